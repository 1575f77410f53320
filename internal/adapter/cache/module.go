package cache

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/hayZedTech/vibestream-backend/config"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
)

var Module = fx.Module("cache",
	fx.Provide(
		// A nil client disables caching; Counters handles that internally.
		func(cfg *config.Config) *redis.Client {
			if cfg.Redis.Addr == "" {
				return nil
			}
			return redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
		},
		func(log *slog.Logger, rdb *redis.Client, cfg *config.Config, posts storage.PostRepository, follows storage.FollowRepository) *Counters {
			return NewCounters(log, rdb, posts, follows, cfg.Redis.CountTTL)
		},
	),
)
