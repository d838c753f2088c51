package handler

import (
	"net/http"
	"testing"

	"giftscout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_List(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	st.AddNotification(entity.NotificationSuccess, "Found 12 people near Blue Bottle", 0)
	h := NewNotificationHandler(&fakeNotificationUsecase{}, st, testLogger())
	e.GET("/notifications", h.ListNotifications)

	rec := request(e, http.MethodGet, "/notifications", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Found 12 people near Blue Bottle")
}

func TestNotificationHandler_Dismiss(t *testing.T) {
	e := newTestEcho()
	uc := &fakeNotificationUsecase{}
	h := NewNotificationHandler(uc, newTestStore(), testLogger())
	e.DELETE("/notifications/:id", h.DismissNotification)

	rec := request(e, http.MethodDelete, "/notifications/n1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"n1"}, uc.dismissed)
}
