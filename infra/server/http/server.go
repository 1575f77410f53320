package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/hayZedTech/vibestream-backend/config"
)

// NewServer builds the HTTP server from the assembled router.
func NewServer(cfg *config.Config, router *chi.Mux) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

var Module = fx.Module("http-server",
	fx.Provide(NewServer),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger, srv *http.Server) {
		g := new(errgroup.Group)
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				g.Go(func() error {
					log.Info("HTTP_SERVER_STARTED", "addr", srv.Addr)
					if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
						return err
					}
					return nil
				})
				return nil
			},
			OnStop: func(ctx context.Context) error {
				shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				return g.Wait()
			},
		})
	}),
)
