package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"peopleSearch": map[string]any{
			"apiKey": "",
			"baseUrl": map[string]any{},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "medium",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PEOPLESEARCH_APIKEY", want: "peopleSearch.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.PeopleSearch.MaxRecords != 500 {
		t.Fatalf("MaxRecords = %d, want 500", cfg.PeopleSearch.MaxRecords)
	}
	if cfg.PeopleSearch.EstimateCeiling != 1000 {
		t.Fatalf("EstimateCeiling = %d, want 1000", cfg.PeopleSearch.EstimateCeiling)
	}
	if cfg.Search.DebounceMs != 500 {
		t.Fatalf("DebounceMs = %d, want 500", cfg.Search.DebounceMs)
	}
	if cfg.Map.CenterLat != 40.7128 || cfg.Map.CenterLon != -74.006 {
		t.Fatalf("unexpected default center (%f, %f)", cfg.Map.CenterLon, cfg.Map.CenterLat)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{DebounceMs: 50, DemoCount: 3},
		Map:    &MapConfig{CenterLon: 121.5, CenterLat: 25.03, Zoom: 12},
	}
	cfg.ApplyDefaults()

	if cfg.Search.DebounceMs != 50 || cfg.Search.DemoCount != 3 {
		t.Fatalf("explicit search values overwritten: %+v", cfg.Search)
	}
	if cfg.Map.CenterLon != 121.5 {
		t.Fatalf("explicit map center overwritten: %+v", cfg.Map)
	}
	if cfg.Search.DemoJitterDeg != 0.005 {
		t.Fatalf("DemoJitterDeg default missing: %f", cfg.Search.DemoJitterDeg)
	}
}
