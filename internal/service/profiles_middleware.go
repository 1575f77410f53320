package service

import (
	"context"
	"log/slog"
	"time"
)

// EnricherMiddleware is a logging decorator around the profile resolver;
// observability without touching the lookup logic itself.
type EnricherMiddleware struct {
	Next   Enricher
	Logger *slog.Logger
}

func (m *EnricherMiddleware) Resolve(ctx context.Context, username string) (Profile, error) {
	start := time.Now()
	p, err := m.Next.Resolve(ctx, username)
	if err != nil {
		m.Logger.Warn("PROFILE_RESOLVE_FAILED",
			"username", username,
			"err", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return p, err
}

func (m *EnricherMiddleware) Invalidate(username string) {
	m.Next.Invalidate(username)
}
