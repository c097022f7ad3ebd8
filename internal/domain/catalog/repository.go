package catalog

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id string) (*models.Location, error)

	ListActiveBarbersByLocation(ctx context.Context, locationID string) ([]models.Barber, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)

	// Seed helpers.
	CreateLocation(ctx context.Context, l *models.Location) error
	CreateBarber(ctx context.Context, b *models.Barber) error
	CreateReward(ctx context.Context, r *models.Reward) error
}
