// Package delivery defines the contract every inbound transport implements.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running transport started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams collects the transports of the deliveries group.
type StartParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []Delivery `group:"deliveries"`
}

// Start launches every delivery from an OnStart hook. Fx runs start hooks in
// append order, so hooks registered by earlier invokes (database ping,
// migrations) finish before the first request is accepted.
func Start(ctx context.Context, params StartParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go serve(ctx, delivery, params.Shutdowner)
			}

			return nil
		},
	})
}

func serve(ctx context.Context, delivery Delivery, shutdowner fx.Shutdowner) {
	if err := delivery.Serve(ctx); err != nil {
		slog.Error("Failed to start server", slog.Any("error", err))

		// Run the OnStop hooks before exiting
		if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}
}
