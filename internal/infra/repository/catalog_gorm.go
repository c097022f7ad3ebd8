package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func (r *GormRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	var loc models.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("location_not_found")
		}
		return nil, err
	}
	return &loc, nil
}

func (r *GormRepository) ListActiveBarbersByLocation(
	ctx context.Context,
	locationID string,
) ([]models.Barber, error) {

	var out []models.Barber
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND is_active = ?", locationID, true).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) CreateLocation(ctx context.Context, l *models.Location) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *GormRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormRepository) CreateReward(ctx context.Context, rw *models.Reward) error {
	if rw.ID == "" {
		rw.ID = models.NewID()
	}
	return r.db.WithContext(ctx).Create(rw).Error
}

func (r *GormRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = models.NewID()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

var _ catalog.Repository = (*GormRepository)(nil)
