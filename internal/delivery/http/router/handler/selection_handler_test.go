package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionHandler_Toggle(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewSelectionHandler(st, testLogger())
	e.POST("/selection/:id/toggle", h.ToggleSelection)

	rec := request(e, http.MethodPost, "/selection/p1/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, st.IsSelected("p1"))
	assert.Contains(t, rec.Body.String(), `"selected":true`)

	rec = request(e, http.MethodPost, "/selection/p1/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, st.IsSelected("p1"))
	assert.Contains(t, rec.Body.String(), `"selected":false`)
}

func TestSelectionHandler_Toggle_UnknownPerson(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewSelectionHandler(st, testLogger())
	e.POST("/selection/:id/toggle", h.ToggleSelection)

	rec := request(e, http.MethodPost, "/selection/ghost/toggle", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERSON_NOT_FOUND")
}

func TestSelectionHandler_GetAndClear(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	people := testPeople()
	st.SetPeople(people)
	st.TogglePersonSelection(people[0])
	st.TogglePersonSelection(people[1])
	h := NewSelectionHandler(st, testLogger())
	e.GET("/selection", h.GetSelection)
	e.DELETE("/selection", h.ClearSelection)

	rec := request(e, http.MethodGet, "/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = request(e, http.MethodDelete, "/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, st.SelectionCount())
}

func TestSelectionHandler_FocusLifecycle(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.SetPeople(testPeople())
	h := NewSelectionHandler(st, testLogger())
	e.GET("/people/focused", h.GetFocusedPerson)
	e.POST("/people/:id/focus", h.FocusPerson)
	e.DELETE("/people/focus", h.UnfocusPerson)

	rec := request(e, http.MethodGet, "/people/focused", "")
	assert.Contains(t, rec.Body.String(), `"data":null`)

	rec = request(e, http.MethodPost, "/people/p2/focus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, st.SelectedPerson())
	assert.Equal(t, "p2", st.SelectedPerson().ID)

	rec = request(e, http.MethodPost, "/people/ghost/focus", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(e, http.MethodDelete, "/people/focus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, st.SelectedPerson())
}
