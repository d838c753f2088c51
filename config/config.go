package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// PeopleSearch configuration for the consumer-data provider. Presence
	// of Customer and APIKey together enables live searches; otherwise the
	// demo generator takes over.
	PeopleSearch *PeopleSearchConfig `json:"peopleSearch" yaml:"peopleSearch"`

	// Fulfillment configuration for the gift provider. An absent APIKey
	// switches the gift client to its built-in catalog and simulated sends.
	Fulfillment *FulfillmentConfig `json:"fulfillment" yaml:"fulfillment"`

	// Map configuration seeds the initial camera state.
	Map *MapConfig `json:"map" yaml:"map"`

	// Search configuration for the orchestration pipeline.
	Search *SearchConfig `json:"search" yaml:"search"`

	// PubSub configuration for order event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order tracking codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PeopleSearchConfig defines the people-search provider connection and the
// cost-control knobs of the two-phase search protocol.
type PeopleSearchConfig struct {
	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
	Customer string `json:"customer" yaml:"customer"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`

	// AppID selects the provider dataset, e.g. "COM_US" for United States
	// consumer data.
	AppID string `json:"appId" yaml:"appId"`

	// Fieldset requested on fetch ("SIMPLE", "EXTENDED", "ALL").
	Fieldset string `json:"fieldset" yaml:"fieldset"`

	// MaxRecords is the provider's hard per-fetch cap.
	MaxRecords int `json:"maxRecords" yaml:"maxRecords"`

	// EstimateCeiling blocks fetches when the estimate is at or above it.
	EstimateCeiling int `json:"estimateCeiling" yaml:"estimateCeiling"`

	// WaitMs is how long the provider may hold the request before falling
	// back to an asynchronous job.
	WaitMs int `json:"waitMs" yaml:"waitMs"`

	// DefaultRadius in meters when no radius filter is set.
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`
}

// FulfillmentConfig defines the gift fulfillment provider connection.
type FulfillmentConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
}

// MapConfig seeds the initial map camera.
type MapConfig struct {
	CenterLon float64 `json:"centerLon" yaml:"centerLon"`
	CenterLat float64 `json:"centerLat" yaml:"centerLat"`
	Zoom      float64 `json:"zoom" yaml:"zoom"`
	Pitch     float64 `json:"pitch" yaml:"pitch"`
	Bearing   float64 `json:"bearing" yaml:"bearing"`
}

// SearchConfig defines orchestration behavior for the search pipeline.
type SearchConfig struct {
	// DebounceMs is the quiet period after the last filter or business
	// change before an estimate call is issued.
	DebounceMs int `json:"debounceMs" yaml:"debounceMs"`

	// DemoCount is how many synthetic people the demo generator produces.
	DemoCount int `json:"demoCount" yaml:"demoCount"`

	// DemoJitterDeg bounds the demo generator's coordinate jitter around
	// the business location, in degrees.
	DemoJitterDeg float64 `json:"demoJitterDeg" yaml:"demoJitterDeg"`

	// DemoSeed makes the demo generator reproducible.
	DemoSeed int64 `json:"demoSeed" yaml:"demoSeed"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation for order tracking links.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PEOPLESEARCH_APIKEY -> peopleSearch.apiKey (not peoplesearch.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills zero values with the defaults the orchestration layer
// depends on. Safe to call on a partially populated config.
func (c *Config) ApplyDefaults() {
	if c.PeopleSearch == nil {
		c.PeopleSearch = &PeopleSearchConfig{}
	}
	ps := c.PeopleSearch
	if ps.BaseURL == "" {
		ps.BaseURL = "https://api.peoplesearch.example.com"
	}
	if ps.AppID == "" {
		ps.AppID = "COM_US"
	}
	if ps.Fieldset == "" {
		ps.Fieldset = "EXTENDED"
	}
	if ps.MaxRecords <= 0 {
		ps.MaxRecords = 500
	}
	if ps.EstimateCeiling <= 0 {
		ps.EstimateCeiling = 1000
	}
	if ps.WaitMs <= 0 {
		ps.WaitMs = 30000
	}
	if ps.DefaultRadius <= 0 {
		ps.DefaultRadius = 5000
	}

	if c.Fulfillment == nil {
		c.Fulfillment = &FulfillmentConfig{}
	}
	if c.Fulfillment.BaseURL == "" {
		c.Fulfillment.BaseURL = "https://api.fulfillment.example.com"
	}

	if c.Map == nil {
		// Default camera over lower Manhattan
		c.Map = &MapConfig{
			CenterLon: -74.006,
			CenterLat: 40.7128,
			Zoom:      15,
			Pitch:     60,
			Bearing:   0,
		}
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	s := c.Search
	if s.DebounceMs <= 0 {
		s.DebounceMs = 500
	}
	if s.DemoCount <= 0 {
		s.DemoCount = 20
	}
	if s.DemoJitterDeg <= 0 {
		s.DemoJitterDeg = 0.005
	}
	if s.DemoSeed == 0 {
		s.DemoSeed = 1
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
