package main

import (
	"context"
	"log/slog"
	"os"

	"larder/config"
	"larder/internal/delivery"
	"larder/internal/delivery/http"
	"larder/internal/delivery/http/middleware"
	"larder/internal/delivery/http/router/handler"
	logs "larder/internal/infra/log"
	"larder/internal/infra/notification"
	"larder/internal/infra/persistence/postgres"
	"larder/internal/infra/persistence/sqlite"
	"larder/internal/infra/reachability"
	"larder/internal/infra/updates"
	"larder/internal/usecase"
	"larder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries   []delivery.Delivery `group:"deliveries"`
	Connectivity usecase.ConnectivityUsecase
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewBlobStore,
			postgres.NewPreferenceRepository,
			postgres.NewPantryRepository,
			postgres.NewShoppingQueueRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewSlogNotifier,
			reachability.New,
			updates.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewListStoreFactory,
			impl.NewPreferenceStoreFactory,
			impl.NewPantryService,
			impl.NewReconcileService,
			impl.NewConnectivityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListHandler,
			handler.NewPreferenceHandler,
			handler.NewReconcileHandler,
			handler.NewConnectivityHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	// Registered after the reachability monitor's own hook, so the first
	// probe has already seeded the signal by the time the session starts.
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			return params.Connectivity.Start(startCtx)
		},
		OnStop: func(_ context.Context) error {
			params.Connectivity.Close()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
