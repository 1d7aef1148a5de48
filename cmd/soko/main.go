package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/delivery"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/middleware"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/router/handler"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
	"github.com/AZHIK/africa-soko-backend/internal/infra/auth"
	"github.com/AZHIK/africa-soko-backend/internal/infra/auth/google"
	logs "github.com/AZHIK/africa-soko-backend/internal/infra/log"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/postgres"
	"github.com/AZHIK/africa-soko-backend/internal/infra/storage"
	"github.com/AZHIK/africa-soko-backend/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			prepareStorage,
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewAddressRepository,
			postgres.NewVendorRepository,
			postgres.NewCatalogRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			storage.NewMinioStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewAddressService,
			impl.NewVendorService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewAddressHandler,
			handler.NewVendorHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewUploadHandler,
			handler.NewSocialHandler,
			handler.NewOnlineHandler,
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

type prepareStorageParams struct {
	fx.In
	fx.Lifecycle

	DB          *gorm.DB
	RoleRepo    repository.RoleRepository
	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// prepareStorage migrates the schema, seeds the RBAC baseline and ensures
// the upload bucket once the database connection is up.
func prepareStorage(params prepareStorageParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(params.DB.WithContext(ctx)); err != nil {
				return err
			}
			if err := postgres.SeedRBAC(ctx, params.RoleRepo, params.Logger); err != nil {
				return err
			}

			return params.ObjectStore.EnsureBucket(ctx)
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
