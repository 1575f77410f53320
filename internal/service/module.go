package service

import (
	"log/slog"

	"go.uber.org/fx"
)

var Module = fx.Module("service",
	fx.Provide(
		NewEngine,
		fx.Annotate(
			NewDeliveryService,
			fx.As(new(Deliverer)),
		),
		fx.Annotate(
			NewAuthService,
			fx.As(new(Auther)),
		),
		fx.Annotate(
			NewProfileEnricher,
			fx.As(new(Enricher)),
		),
		fx.Annotate(
			NewRelationshipService,
			fx.As(new(Relationshiper)),
		),
	),

	// [DECORATION_LAYER] Intercept the enricher to add cross-cutting concerns.
	fx.Decorate(func(orig Enricher, logger *slog.Logger) Enricher {
		return &EnricherMiddleware{
			Next:   orig,
			Logger: logger,
		}
	}),
)
