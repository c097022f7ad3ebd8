package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
)

// OpenStore connects the configured backend and wraps it with the retry
// policy. The returned func releases the connection.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Store, func(), error) {
	var (
		store   repository.Store
		closeFn = func() {}
	)

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		gdb, err := NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewGormRepository(gdb)
		closeFn = func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

	case config.BackendMongo:
		database, err := NewMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewMongoRepository(database)
		closeFn = func() {
			_ = database.Client().Disconnect(context.Background())
		}

	case config.BackendMemory:
		log.Warn("using in-memory store, data is lost on restart")
		store = repository.NewMemoryRepository()

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	policy := repository.DefaultRetryPolicy()
	policy.MaxTries = cfg.StoreMaxRetries
	if cfg.StoreRetryInitial > 0 {
		policy.Initial = cfg.StoreRetryInitial
	}

	log.Info("store ready",
		zap.String("backend", cfg.StoreBackend),
		zap.Uint("max_tries", policy.MaxTries),
	)

	return repository.NewRetryingStore(store, policy, log), closeFn, nil
}
