package main

import (
	"context"

	"devconnector/config"
	"devconnector/internal/delivery"
	"devconnector/internal/delivery/api"
	"devconnector/internal/delivery/api/middleware"
	"devconnector/internal/delivery/api/router/handler"
	"devconnector/internal/infra/auth"
	"devconnector/internal/infra/github"
	"devconnector/internal/infra/gravatar"
	logs "devconnector/internal/infra/log"
	"devconnector/internal/infra/persistence/migrations"
	"devconnector/internal/infra/persistence/postgres"
	"devconnector/internal/infra/pubsub"
	"devconnector/internal/infra/qrcode"
	"devconnector/internal/usecase/impl"

	"go.uber.org/fx"
)

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
			migrations.RegisterAutoMigrate,
			delivery.Start,
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
			postgres.NewProfileRepository,
			postgres.NewPostRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			gravatar.NewResolver,
			github.NewClient,
			qrcode.NewQRCodeService,
			pubsub.NewActivityPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewPostService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewPostHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
