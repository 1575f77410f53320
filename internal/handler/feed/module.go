package feed

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/fx"
)

var Module = fx.Module("feed",
	fx.Provide(
		NewListener,
		func(log *slog.Logger) watermill.LoggerAdapter {
			return watermill.NewSlogLogger(log)
		},
		func(logger watermill.LoggerAdapter) (*message.Router, error) {
			return message.NewRouter(message.RouterConfig{}, logger)
		},
	),
	fx.Invoke(func(lc fx.Lifecycle, router *message.Router, listener *Listener, sub message.Subscriber) {
		listener.RegisterHandlers(router, sub)

		runCtx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() { done <- router.Run(runCtx) }()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				cancel()
				if err := router.Close(); err != nil {
					return err
				}
				select {
				case err := <-done:
					return err
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		})
	}),
)
