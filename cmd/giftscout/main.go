package main

import (
	"context"
	"log/slog"
	"os"

	"giftscout/config"
	"giftscout/internal/delivery"
	"giftscout/internal/delivery/http"
	"giftscout/internal/delivery/http/router/handler"
	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"
	"giftscout/internal/infra/fulfillment"
	logs "giftscout/internal/infra/log"
	"giftscout/internal/infra/mapsurface"
	"giftscout/internal/infra/peoplesearch"
	"giftscout/internal/infra/pubsub"
	"giftscout/internal/infra/qrcode"
	"giftscout/internal/store"
	"giftscout/internal/usecase"
	"giftscout/internal/usecase/impl"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startStateServices,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newStore,
		),
		pubsub.Module,
	)
}

// newStore seeds the state store's camera from configuration.
func newStore(cfg *config.Config) *store.Store {
	initial := entity.MapState{}
	if cfg.Map != nil {
		initial = entity.MapState{
			Center:  orb.Point{cfg.Map.CenterLon, cfg.Map.CenterLat},
			Zoom:    cfg.Map.Zoom,
			Pitch:   cfg.Map.Pitch,
			Bearing: cfg.Map.Bearing,
		}
	}

	return store.New(initial)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPeopleSearcher,
			newGiftProvider,
			newDemoGenerator,
			newMapSurface,
			newQRCodeService,
		),
	)
}

func newPeopleSearcher(cfg *config.Config, logger *slog.Logger) service.PeopleSearcher {
	return peoplesearch.NewClient(cfg.PeopleSearch, logger)
}

func newGiftProvider(cfg *config.Config, logger *slog.Logger) service.GiftProvider {
	return fulfillment.NewClient(cfg.Fulfillment, logger)
}

func newDemoGenerator(cfg *config.Config) usecase.DemoPeopleGenerator {
	return peoplesearch.NewDemoGenerator(cfg.Search)
}

func newMapSurface(cfg *config.Config, logger *slog.Logger) service.MapSurface {
	return mapsurface.NewSurface(cfg.Map, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Tracking codes stay disabled without a configured base URL
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewGiftService,
			impl.NewMarkerService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewFilterHandler,
			handler.NewSearchHandler,
			handler.NewSelectionHandler,
			handler.NewGiftHandler,
			handler.NewMapHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startStateServices runs the store-driven background services: marker
// synchronization and notification auto-dismissal.
func startStateServices(lc fx.Lifecycle, markers usecase.MarkerSyncUsecase, notifications usecase.NotificationUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			markers.Start()
			notifications.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			notifications.Stop()
			markers.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
