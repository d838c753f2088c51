package handler

import (
	"net/http"
	"testing"

	domainerrors "giftscout/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_RunSearch(t *testing.T) {
	e := newTestEcho()
	uc := &fakeSearchUsecase{}
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewSearchHandler(uc, st, testLogger())
	e.POST("/search", h.RunSearch)

	rec := request(e, http.MethodPost, "/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.runs)
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestSearchHandler_RunSearch_NoBusiness(t *testing.T) {
	e := newTestEcho()
	uc := &fakeSearchUsecase{runErr: domainerrors.ErrBusinessNotSet}
	h := NewSearchHandler(uc, newTestStore(), testLogger())
	e.POST("/search", h.RunSearch)

	rec := request(e, http.MethodPost, "/search", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_DECLINED")
}

func TestSearchHandler_GetEstimate(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewSearchHandler(&fakeSearchUsecase{}, st, testLogger())
	e.GET("/search/estimate", h.GetEstimate)

	rec := request(e, http.MethodGet, "/search/estimate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estimate":null`)

	estimate := 240
	st.SetFilterResultCount(&estimate)

	rec = request(e, http.MethodGet, "/search/estimate", "")
	assert.Contains(t, rec.Body.String(), `"estimate":240`)
}

func TestSearchHandler_GetColumns(t *testing.T) {
	e := newTestEcho()
	uc := &fakeSearchUsecase{columns: []string{"Voters_Gender", "Age"}}
	h := NewSearchHandler(uc, newTestStore(), testLogger())
	e.GET("/search/columns", h.GetColumns)

	rec := request(e, http.MethodGet, "/search/columns", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Voters_Gender")
}

func TestSearchHandler_GetColumns_Unconfigured(t *testing.T) {
	e := newTestEcho()
	uc := &fakeSearchUsecase{columnsErr: domainerrors.ErrConfigurationMissing}
	h := NewSearchHandler(uc, newTestStore(), testLogger())
	e.GET("/search/columns", h.GetColumns)

	rec := request(e, http.MethodGet, "/search/columns", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchHandler_ListPeople(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewSearchHandler(&fakeSearchUsecase{}, st, testLogger())
	e.GET("/people", h.ListPeople)

	rec := request(e, http.MethodGet, "/people", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada")
	assert.Contains(t, rec.Body.String(), "Alan")
}
