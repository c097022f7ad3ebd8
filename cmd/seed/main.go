package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/seed"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func main() {
	staffName := flag.String("staff-name", "Front desk", "name of the staff account")
	staffEmail := flag.String("staff-email", "", "create a staff account with this email")
	staffPassword := flag.String("staff-password", "", "password of the staff account")
	flag.Parse()

	cfg := config.Load()
	log := logger.MustNew(cfg.Env)
	defer func() { _ = log.Sync() }()

	if cfg.StoreBackend == config.BackendMemory {
		log.Fatal("seeding the in-memory store has no effect, pick postgres or mongo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := dbpkg.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	var staff *seed.Staff
	if *staffEmail != "" {
		if len(*staffPassword) < 6 {
			log.Fatal("staff password must have at least 6 characters")
		}
		staff = &seed.Staff{Name: *staffName, Email: *staffEmail, Password: *staffPassword}
	}

	if err := seed.Run(ctx, store, staff, timezone.NowIn(cfg.Timezone), log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed complete")
}
