package peoplesearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftscout/config"
	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"
	"giftscout/internal/errors"
)

func newTestClient(baseURL string) *client {
	cfg := &config.PeopleSearchConfig{
		BaseURL:         baseURL,
		Customer:        "cust-1",
		APIKey:          "key-1",
		AppID:           "COM_US",
		Fieldset:        "EXTENDED",
		MaxRecords:      500,
		EstimateCeiling: 1000,
		WaitMs:          30000,
		DefaultRadius:   5000,
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC) },
	}
}

func TestClient_Estimate(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(estimateResponse{Result: "ok", Total: 523})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	total, err := c.Estimate(context.Background(), orb.Point{-74.006, 40.7128}, 5000, entity.SearchFilters{
		entity.FilterHomeowner: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 523, total)
	assert.Equal(t, "/api/v2/records/search/estimate/cust-1/COM_US", gotPath)
	assert.Contains(t, gotQuery, "id=cust-1")
	assert.Contains(t, gotQuery, "apikey=key-1")
	assert.Equal(t, "Y", gotBody.Filters["Homeowner_Probability_Model"])
	assert.Zero(t, gotBody.Limit, "estimate carries no fetch parameters")
}

func TestClient_EstimateNegativeTotalFloorsToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(estimateResponse{Result: "ok", Total: -1})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	total, err := c.Estimate(context.Background(), orb.Point{-74.006, 40.7128}, 5000, entity.SearchFilters{})

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/records/search/cust-1/COM_US", r.URL.Path)

		var body searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "json", body.Format)
		assert.Equal(t, 100, body.Limit)
		assert.Equal(t, 30000, body.Wait)

		_ = json.NewEncoder(w).Encode(searchResponse{
			Result: "ok",
			Data: []map[string]any{
				{"LALVOTERID": "A1", "Voters_FirstName": "Ada", "Latitude": "40.7", "Longitude": "-74.0"},
				{"Individual_ID": "B2", "First_Name": "Grace"},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	people, err := c.Search(context.Background(), orb.Point{-74.006, 40.7128}, 5000, nil, 100)

	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "A1", people[0].ID)
	assert.Equal(t, "B2", people[1].ID)
	assert.Equal(t, "Grace", people[1].FirstName)
}

func TestClient_SearchJobDeferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Result: "pending", Job: "job-42"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Search(context.Background(), orb.Point{}, 5000, nil, 100)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrJobPollingRequired))
	assert.Contains(t, err.Error(), "job-42")
}

func TestClient_SearchProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Result: "error", Message: "quota exceeded"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Search(context.Background(), orb.Point{}, 5000, nil, 100)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_ErrorStatusSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid api key"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Estimate(context.Background(), orb.Point{}, 5000, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Contains(t, err.Error(), "403")
}

func TestClient_Columns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/customer/application/columns/cust-1/COM_US", r.URL.Path)
		_ = json.NewEncoder(w).Encode(columnsResponse{Columns: []string{"Voters_Gender", "Estimated_Income"}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	cols, err := c.Columns(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Voters_Gender", "Estimated_Income"}, cols)
}

func TestClient_IsConfigured(t *testing.T) {
	c := newTestClient("http://example.com")
	assert.True(t, c.IsConfigured())

	c.cfg.APIKey = ""
	assert.False(t, c.IsConfigured())
}
