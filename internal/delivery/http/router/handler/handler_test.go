package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	httpmiddleware "giftscout/internal/delivery/http/middleware"
	"giftscout/internal/delivery/http/validator"
	"giftscout/internal/domain/entity"
	"giftscout/internal/store"
	"giftscout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the validator and the central error handler the real
// server installs, so handler errors render through the same envelope.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

func newTestStore() *store.Store {
	return store.New(entity.MapState{Center: orb.Point{-74.006, 40.7128}, Zoom: 15})
}

// request runs one request through the echo instance and returns the recorder.
func request(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// fakeSearchUsecase records calls; handlers under test own the HTTP shape,
// not the pipeline semantics.
type fakeSearchUsecase struct {
	business   *entity.Business
	cleared    int
	patches    []entity.SearchFilters
	resets     int
	runs       int
	runErr     error
	columns    []string
	columnsErr error
}

func (f *fakeSearchUsecase) SetBusiness(_ context.Context, b entity.Business) error {
	f.business = &b

	return f.runErr
}

func (f *fakeSearchUsecase) ClearBusiness(context.Context) { f.cleared++ }

func (f *fakeSearchUsecase) ApplyFilters(_ context.Context, patch entity.SearchFilters) {
	f.patches = append(f.patches, patch)
}

func (f *fakeSearchUsecase) ResetFilters(context.Context) { f.resets++ }

func (f *fakeSearchUsecase) RunSearch(context.Context) error {
	f.runs++

	return f.runErr
}

func (f *fakeSearchUsecase) Columns(context.Context) ([]string, error) {
	return f.columns, f.columnsErr
}

type fakeGiftUsecase struct {
	catalog      []entity.Gift
	catalogErr   error
	confirmation *usecase.OrderConfirmation
	sendErr      error
	sentGiftID   string
	sentMessage  string
	status       entity.OrderStatus
	statusErr    error
	statusID     string
}

func (f *fakeGiftUsecase) Catalog(context.Context) ([]entity.Gift, error) {
	return f.catalog, f.catalogErr
}

func (f *fakeGiftUsecase) SendGifts(_ context.Context, giftID, message string) (*usecase.OrderConfirmation, error) {
	f.sentGiftID = giftID
	f.sentMessage = message

	return f.confirmation, f.sendErr
}

func (f *fakeGiftUsecase) OrderStatus(_ context.Context, orderID string) (entity.OrderStatus, error) {
	f.statusID = orderID

	return f.status, f.statusErr
}

type fakeNotificationUsecase struct {
	dismissed []string
}

func (f *fakeNotificationUsecase) Notify(kind entity.NotificationKind, message string, duration time.Duration) entity.AppNotification {
	return entity.AppNotification{Kind: kind, Message: message, Duration: duration}
}

func (f *fakeNotificationUsecase) Dismiss(id string) { f.dismissed = append(f.dismissed, id) }

func (f *fakeNotificationUsecase) Start() {}

func (f *fakeNotificationUsecase) Stop() {}

func testPeople() []entity.Person {
	return []entity.Person{
		{ID: "p1", FirstName: "Ada", LastName: "Lovelace", Latitude: 40.71, Longitude: -74.0},
		{ID: "p2", FirstName: "Alan", LastName: "Turing", Latitude: 40.72, Longitude: -74.01},
	}
}

var _ usecase.SearchUsecase = (*fakeSearchUsecase)(nil)
var _ usecase.GiftUsecase = (*fakeGiftUsecase)(nil)
var _ usecase.NotificationUsecase = (*fakeNotificationUsecase)(nil)
