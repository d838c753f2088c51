// Package peoplesearch implements the consumer-data provider client behind
// the PeopleSearcher port, plus a deterministic demo generator used when no
// credentials are configured.
package peoplesearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"giftscout/config"
	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"
)

type client struct {
	cfg           *config.PeopleSearchConfig
	httpClient    *http.Client
	logger        *slog.Logger
	now           func() time.Time
	interestMatch InterestFieldMatcher
}

// NewClient builds a PeopleSearcher backed by the provider's records API.
func NewClient(cfg *config.PeopleSearchConfig, logger *slog.Logger) service.PeopleSearcher {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			// Search requests may hold the connection up to the provider's
			// wait window before answering.
			Timeout: time.Duration(cfg.WaitMs)*time.Millisecond + 15*time.Second,
		},
		logger:        logger,
		now:           time.Now,
		interestMatch: DefaultInterestMatcher,
	}
}

func (c *client) IsConfigured() bool {
	return c.cfg.Customer != "" && c.cfg.APIKey != ""
}

func (c *client) endpoint(path string) string {
	auth := url.Values{}
	auth.Set("id", c.cfg.Customer)
	auth.Set("apikey", c.cfg.APIKey)

	return fmt.Sprintf("%s%s/%s/%s?%s",
		c.cfg.BaseURL, path, url.PathEscape(c.cfg.Customer), url.PathEscape(c.cfg.AppID), auth.Encode())
}

type estimateResponse struct {
	Result string `json:"result"`
	Total  int    `json:"total"`
}

type searchResponse struct {
	Result  string           `json:"result"`
	Data    []map[string]any `json:"data"`
	Job     string           `json:"job"`
	Message string           `json:"message"`
}

type columnsResponse struct {
	Columns []string `json:"columns"`
}

// Estimate returns the number of records a search would match, without
// consuming fetch credits. The result is never negative.
func (c *client) Estimate(ctx context.Context, center orb.Point, radiusMeters float64, filters entity.SearchFilters) (int, error) {
	body := buildEstimateRequest(center, radiusMeters, filters)

	var decoded estimateResponse
	if err := c.post(ctx, c.endpoint("/api/v2/records/search/estimate"), body, &decoded); err != nil {
		return 0, errors.Wrap(err, "estimate request failed")
	}

	total := decoded.Total
	if total < 0 {
		total = 0
	}

	c.logger.Debug("people search estimated",
		slog.Int("total", total),
		slog.Float64("radius_m", radiusMeters),
	)

	return total, nil
}

// Search fetches matching records and translates them into people. A response
// that deferred to an asynchronous job surfaces ErrJobPollingRequired.
func (c *client) Search(ctx context.Context, center orb.Point, radiusMeters float64, filters entity.SearchFilters, limit int) ([]entity.Person, error) {
	body := buildSearchRequest(center, radiusMeters, filters, limit, c.cfg.MaxRecords, c.cfg.WaitMs, c.cfg.Fieldset)

	var decoded searchResponse
	if err := c.post(ctx, c.endpoint("/api/v2/records/search"), body, &decoded); err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}

	if decoded.Result == "ok" && decoded.Data != nil {
		now := c.now()
		people := make([]entity.Person, 0, len(decoded.Data))
		for _, record := range decoded.Data {
			people = append(people, decodePerson(record, now, c.interestMatch))
		}

		c.logger.Info("people search completed",
			slog.Int("count", len(people)),
			slog.Int("limit", body.Limit),
		)

		return people, nil
	}

	if decoded.Job != "" {
		return nil, errors.Wrapf(service.ErrJobPollingRequired, "job %s", decoded.Job)
	}

	if decoded.Message != "" {
		return nil, errors.Errorf("provider rejected search: %s", decoded.Message)
	}

	return []entity.Person{}, nil
}

// Columns lists the fields available to this customer's dataset.
func (c *client) Columns(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/v2/customer/application/columns"), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("provider returned status %d", resp.StatusCode)
	}

	var decoded columnsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.WithStack(err)
	}

	return decoded.Columns, nil
}

func (c *client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error payloads carry a message worth surfacing to the operator.
		var failure struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Message != "" {
			return errors.Errorf("provider returned status %d: %s", resp.StatusCode, failure.Message)
		}

		return errors.Errorf("provider returned status %d", resp.StatusCode)
	}

	return errors.WithStack(json.Unmarshal(raw, out))
}
