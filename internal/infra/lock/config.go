package lock

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

// FromConfig returns a Redis locker when REDIS_ADDR is set and a
// process-local one otherwise.
func FromConfig(ctx context.Context, cfg *config.Config, log *zap.Logger) (domain.Locker, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("no redis configured, completion lock is process-local")
		return NewLocalLocker(), func() {}, nil
	}

	rdb, err := NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	log.Info("completion lock backed by redis", zap.String("addr", cfg.RedisAddr))
	return NewRedisLocker(rdb), func() { _ = rdb.Close() }, nil
}
