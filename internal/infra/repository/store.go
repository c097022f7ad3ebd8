package repository

import (
	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/account"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
)

// Store is everything a backend has to provide.
type Store interface {
	domain.Repository
	loyalty.Repository
	account.Repository
	catalog.Repository
	audit.Store
}

var _ Store = (*GormRepository)(nil)
