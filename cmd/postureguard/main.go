package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/graylake-dev/postureguard/cmd/postureguard/api"
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/graylake-dev/postureguard/database"
	"github.com/graylake-dev/postureguard/database/repositories"
	"github.com/graylake-dev/postureguard/router"
	"github.com/graylake-dev/postureguard/services"
	"github.com/graylake-dev/postureguard/shared"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			postureguard API
//	@version		v1
//	@description	postureguard API

//	@contact.name	Support
//	@contact.url	https://github.com/graylake-dev/postureguard/issues

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				// This is a catch-all. To see the stack trace in GlitchTip open the Stacktrace below
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	// Initialize database connection first
	poolCfg := database.GetPoolConfigFromEnv()
	pool := database.NewPgxConnPool(poolCfg)
	db := database.NewGormDB(pool)

	// Run database migrations using the existing database connection
	disableAutoMigrate := os.Getenv("DISABLE_AUTOMIGRATE")
	if disableAutoMigrate != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(UserRouter router.UserRouter) {}),
		fx.Invoke(func(ContainerRouter router.ContainerRouter) {}),
		fx.Invoke(func(SecurityIssueRouter router.SecurityIssueRouter) {}),
		fx.Invoke(func(SecurityReviewRouter router.SecurityReviewRouter) {}),
		fx.Invoke(func(SecurityViolationRouter router.SecurityViolationRouter) {}),
		fx.Invoke(func(SecurityControlRouter router.SecurityControlRouter) {}),
		fx.Invoke(func(ArchitectureComponentRouter router.ArchitectureComponentRouter) {}),
		fx.Invoke(func(StatisticsRouter router.StatisticsRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
