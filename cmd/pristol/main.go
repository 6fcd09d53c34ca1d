package main

import (
	"context"
	"log/slog"
	"os"

	"pristol/config"
	"pristol/internal/delivery"
	"pristol/internal/delivery/http"
	"pristol/internal/delivery/http/middleware"
	"pristol/internal/delivery/http/router/handler"
	"pristol/internal/delivery/worker"
	"pristol/internal/domain/service"
	"pristol/internal/infra/auth"
	"pristol/internal/infra/firebase"
	logs "pristol/internal/infra/log"
	"pristol/internal/infra/persistence/firestore"
	"pristol/internal/infra/pubsub"
	"pristol/internal/infra/qrcode"
	"pristol/internal/infra/upload"
	"pristol/internal/usecase"
	"pristol/internal/usecase/impl"

	"go.uber.org/fx"

	// Blob drivers for the configured storage bucket URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			refreshOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewFirestoreClient,
		pubsub.NewEventPublisher,
		upload.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewFirebaseVerifier,
			newQRCodeService,
			upload.NewBlobUploader,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://pristol.app")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewCatalogService,
			impl.NewOrdersService,
			impl.NewInboxService,
			impl.NewDashboardService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewMessageHandler,
			handler.NewDashboardHandler,
			handler.NewUploadHandler,
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
			fx.Annotate(
				worker.NewOrderWatcher,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// refreshOnStart performs the initial full fetch once the app is up.
func refreshOnStart(lc fx.Lifecycle, ctx context.Context, sync usecase.SyncUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sync.Refresh(ctx)

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
