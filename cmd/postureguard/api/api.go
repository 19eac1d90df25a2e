package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/graylake-dev/postureguard/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartedAt is read by the info endpoint to report process uptime.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo application and ties its lifetime to the fx app.
// Routes are registered by the router constructors before OnStart runs.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			// print all registered routes
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}

			go func() {
				if err := e.Start(":8080"); err != nil && err != http.ErrServerClosed {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
