package handler

import (
	"net/http"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHandler_GetMapState(t *testing.T) {
	e := newTestEcho()
	h := NewMapHandler(newTestStore(), testLogger())
	e.GET("/map", h.GetMapState)

	rec := request(e, http.MethodGet, "/map", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"zoom":15`)
}

func TestMapHandler_SetMapState_Partial(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewMapHandler(st, testLogger())
	e.PUT("/map", h.SetMapState)

	rec := request(e, http.MethodPut, "/map", `{"zoom":17.5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	state := st.MapState()
	assert.Equal(t, 17.5, state.Zoom)
	// Untouched fields keep their previous values.
	assert.Equal(t, orb.Point{-74.006, 40.7128}, state.Center)
}

func TestMapHandler_SetMapState_Invalid(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewMapHandler(st, testLogger())
	e.PUT("/map", h.SetMapState)

	tests := []struct {
		name string
		body string
	}{
		{"zoom above range", `{"zoom":30}`},
		{"pitch above range", `{"pitch":90}`},
		{"bearing below range", `{"bearing":-200}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(e, http.MethodPut, "/map", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 15.0, st.MapState().Zoom)
		})
	}
}

func TestMapHandler_MoveEnd(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewMapHandler(st, testLogger())
	e.POST("/map/events/move-end", h.MoveEnd)

	rec := request(e, http.MethodPost, "/map/events/move-end", `{"center":[13.4,52.5],"zoom":12,"bearing":45}`)

	require.Equal(t, http.StatusOK, rec.Code)
	state := st.MapState()
	assert.Equal(t, orb.Point{13.4, 52.5}, state.Center)
	assert.Equal(t, 12.0, state.Zoom)
	assert.Equal(t, 45.0, state.Bearing)
}

func TestMapHandler_MarkerClick(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewMapHandler(st, testLogger())
	e.POST("/map/events/marker-click", h.MarkerClick)

	rec := request(e, http.MethodPost, "/map/events/marker-click", `{"person_id":"p1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, st.SelectedPerson())
	assert.Equal(t, "p1", st.SelectedPerson().ID)
}

func TestMapHandler_MarkerClick_Unknown(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewMapHandler(st, testLogger())
	e.POST("/map/events/marker-click", h.MarkerClick)

	rec := request(e, http.MethodPost, "/map/events/marker-click", `{"person_id":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, st.SelectedPerson())
}
