package cmd

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/hayZedTech/vibestream-backend/config"
	httpsrv "github.com/hayZedTech/vibestream-backend/infra/server/http"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/cache"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/media"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/pubsub"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
	"github.com/hayZedTech/vibestream-backend/internal/handler/feed"
	httphandler "github.com/hayZedTech/vibestream-backend/internal/handler/http"
	"github.com/hayZedTech/vibestream-backend/internal/handler/ws"
	"github.com/hayZedTech/vibestream-backend/internal/service"
)

func NewApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			ProvideLogger,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		storage.Module,
		cache.Module,
		media.Module,
		pubsub.Module,
		registry.Module,
		service.Module,
		ws.Module,
		feed.Module,
		httphandler.Module,
		httpsrv.Module,
	)
}
