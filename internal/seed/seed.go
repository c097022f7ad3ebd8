package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/domain/account"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Store interface {
	catalog.Repository
	account.Repository
}

type location struct {
	Name    string
	Address string
	Phone   string
	Barbers []string
}

var locations = []location{
	{Name: "Peluquería Mitre", Address: "Mitre 123, Buenos Aires", Phone: "+54911111111", Barbers: []string{"Lautaro", "Carlos", "Juan"}},
	{Name: "Peluquería Gerli", Address: "Gerli 456, Buenos Aires", Phone: "+54922222222", Barbers: []string{"Nicolas", "Pedro", "Luis"}},
	{Name: "Peluquería Lavalle", Address: "Lavalle 789, Buenos Aires", Phone: "+54933333333", Barbers: []string{"Franco", "Toto", "Matias"}},
}

var rewards = []models.Reward{
	{Title: "20% off", Description: "20% off your next haircut", PointsCost: 50, DiscountPercent: 20, IsActive: true},
	{Title: "Free haircut", Description: "A completely free haircut", PointsCost: 100, DiscountPercent: 100, IsActive: true},
	{Title: "Hair treatment", Description: "Professional hair treatment included", PointsCost: 150, DiscountPercent: 100, IsActive: true},
}

// Staff is an optional back-office account created with the catalogue.
type Staff struct {
	Name     string
	Email    string
	Password string
}

// Run loads the initial catalogue into a store without locations and
// creates the staff account when one is given. Repeating it is harmless.
func Run(ctx context.Context, store Store, staff *Staff, now time.Time, log *zap.Logger) error {
	existing, err := store.ListLocations(ctx)
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}
	if len(existing) > 0 {
		log.Info("catalogue already present, skipping", zap.Int("locations", len(existing)))
	} else if err := loadCatalogue(ctx, store, now, log); err != nil {
		return err
	}

	if staff == nil || staff.Email == "" {
		return nil
	}
	return createStaff(ctx, store, *staff, now, log)
}

func loadCatalogue(ctx context.Context, store Store, now time.Time, log *zap.Logger) error {
	for _, l := range locations {
		loc := &models.Location{
			Name:      l.Name,
			Address:   l.Address,
			Phone:     l.Phone,
			IsOpen:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.CreateLocation(ctx, loc); err != nil {
			return fmt.Errorf("create location %s: %w", l.Name, err)
		}

		for _, name := range l.Barbers {
			b := &models.Barber{
				LocationID: loc.ID,
				Name:       name,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := store.CreateBarber(ctx, b); err != nil {
				return fmt.Errorf("create barber %s: %w", name, err)
			}
		}
		log.Info("location seeded", zap.String("name", l.Name), zap.Int("barbers", len(l.Barbers)))
	}

	for _, r := range rewards {
		r.CreatedAt, r.UpdatedAt = now, now
		if err := store.CreateReward(ctx, &r); err != nil {
			return fmt.Errorf("create reward %s: %w", r.Title, err)
		}
	}
	log.Info("rewards seeded", zap.Int("count", len(rewards)))
	return nil
}

func createStaff(ctx context.Context, store Store, s Staff, now time.Time, log *zap.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &models.User{
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleStaff,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateUser(ctx, u); err != nil {
		if httperr.IsBusiness(err, "email_taken") {
			log.Info("staff account already exists", zap.String("email", s.Email))
			return nil
		}
		return fmt.Errorf("create staff: %w", err)
	}

	log.Info("staff account created", zap.String("email", s.Email))
	return nil
}
