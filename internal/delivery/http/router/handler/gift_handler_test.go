package handler

import (
	"net/http"
	"testing"
	"time"

	"giftscout/internal/domain/entity"
	domainerrors "giftscout/internal/domain/errors"
	"giftscout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftHandler_GetCatalog(t *testing.T) {
	e := newTestEcho()
	uc := &fakeGiftUsecase{catalog: []entity.Gift{
		{ID: "gift-1", Name: "Premium Coffee Sampler", Price: 10},
		{ID: "gift-2", Name: "Artisan Chocolate Box", Price: 25},
	}}
	h := NewGiftHandler(uc, newTestStore(), testLogger())
	e.GET("/gifts", h.GetCatalog)

	rec := request(e, http.MethodGet, "/gifts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Premium Coffee Sampler")
	assert.Contains(t, rec.Body.String(), "gift-2")
}

func TestGiftHandler_Panel(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewGiftHandler(&fakeGiftUsecase{}, st, testLogger())
	e.POST("/gifts/panel/open", h.OpenGiftSelection)
	e.POST("/gifts/panel/close", h.CloseGiftSelection)

	rec := request(e, http.MethodPost, "/gifts/panel/open", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, st.ShowGiftSelection())
	assert.Contains(t, rec.Body.String(), `"show_gift_selection":true`)

	rec = request(e, http.MethodPost, "/gifts/panel/close", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, st.ShowGiftSelection())
}

func TestGiftHandler_SendGifts(t *testing.T) {
	e := newTestEcho()
	order := entity.GiftOrder{
		ID:         "order-1",
		Gift:       entity.Gift{ID: "gift-1", Name: "Premium Coffee Sampler", Price: 10},
		Recipients: testPeople(),
		TotalPrice: 20,
		Status:     entity.OrderStatusSent,
		CreatedAt:  time.Now(),
	}
	uc := &fakeGiftUsecase{confirmation: &usecase.OrderConfirmation{Order: order, TrackingQR: []byte{0x89, 0x50}}}
	h := NewGiftHandler(uc, newTestStore(), testLogger())
	e.POST("/orders", h.SendGifts)

	rec := request(e, http.MethodPost, "/orders", `{"gift_id":"gift-1","message":"Enjoy!"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gift-1", uc.sentGiftID)
	assert.Equal(t, "Enjoy!", uc.sentMessage)
	assert.Contains(t, rec.Body.String(), "order-1")
	// []byte marshals as base64, so the QR payload travels inline.
	assert.Contains(t, rec.Body.String(), `"tracking_qr":"iVA="`)
}

func TestGiftHandler_SendGifts_MissingGiftID(t *testing.T) {
	e := newTestEcho()
	uc := &fakeGiftUsecase{}
	h := NewGiftHandler(uc, newTestStore(), testLogger())
	e.POST("/orders", h.SendGifts)

	rec := request(e, http.MethodPost, "/orders", `{"message":"Enjoy!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.sentGiftID)
}

func TestGiftHandler_SendGifts_EmptySelection(t *testing.T) {
	e := newTestEcho()
	uc := &fakeGiftUsecase{sendErr: domainerrors.ErrValidationDeclined.WithDetails("no people selected")}
	h := NewGiftHandler(uc, newTestStore(), testLogger())
	e.POST("/orders", h.SendGifts)

	rec := request(e, http.MethodPost, "/orders", `{"gift_id":"gift-1"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_DECLINED")
}

func TestGiftHandler_CurrentOrderLifecycle(t *testing.T) {
	e := newTestEcho()
	st := newTestStore()
	h := NewGiftHandler(&fakeGiftUsecase{}, st, testLogger())
	e.GET("/orders/current", h.GetCurrentOrder)
	e.DELETE("/orders/confirmation", h.CloseOrderConfirmation)

	rec := request(e, http.MethodGet, "/orders/current", "")
	assert.Contains(t, rec.Body.String(), `"order":null`)
	assert.Contains(t, rec.Body.String(), `"show_confirmation":false`)

	st.CreateOrder(entity.GiftOrder{ID: "order-7", Status: entity.OrderStatusProcessing})

	rec = request(e, http.MethodGet, "/orders/current", "")
	assert.Contains(t, rec.Body.String(), "order-7")
	assert.Contains(t, rec.Body.String(), `"show_confirmation":true`)

	rec = request(e, http.MethodDelete, "/orders/confirmation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, st.ShowOrderConfirmation())
}

func TestGiftHandler_GetOrderStatus(t *testing.T) {
	e := newTestEcho()
	uc := &fakeGiftUsecase{status: entity.OrderStatusProcessing}
	h := NewGiftHandler(uc, newTestStore(), testLogger())
	e.GET("/orders/:id/status", h.GetOrderStatus)

	rec := request(e, http.MethodGet, "/orders/order-7/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "order-7", uc.statusID)
	assert.Contains(t, rec.Body.String(), `"status":"processing"`)
}
