package main

import (
	"context"
	"log/slog"
	"os"

	"gamedash/config"
	"gamedash/internal/delivery"
	"gamedash/internal/delivery/http"
	"gamedash/internal/delivery/http/middleware"
	"gamedash/internal/delivery/http/router/handler"
	"gamedash/internal/domain/service"
	"gamedash/internal/infra/auth"
	logs "gamedash/internal/infra/log"
	"gamedash/internal/infra/mail"
	"gamedash/internal/infra/persistence/postgres"
	"gamedash/internal/infra/store"
	"gamedash/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewGameRepository,
			postgres.NewReviewRepository,
			postgres.NewActivityRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewResetTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newResetTokenGenerator,
			mail.NewLogMailer,
			store.NewClient,
		),
	)
}

// newResetTokenGenerator exposes the random token source as an injectable
// function value.
func newResetTokenGenerator() service.ResetTokenGenerator {
	return auth.NewResetToken
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPasswordResetService,
			impl.NewGameService,
			impl.NewReviewService,
			impl.NewActivityService,
			impl.NewStoreService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPasswordResetHandler,
			handler.NewGameHandler,
			handler.NewReviewHandler,
			handler.NewActivityHandler,
			handler.NewStoreHandler,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
