package registry

import (
	"log/slog"

	"go.uber.org/fx"
)

var Module = fx.Module("registry",
	fx.Provide(
		func(log *slog.Logger) *Hub {
			return NewHub(WithLogger(log))
		},
		func(h *Hub) Presencer { return h },
	),
)
