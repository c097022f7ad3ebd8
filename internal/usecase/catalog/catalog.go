package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ListLocations struct {
	repo domain.Repository
}

func NewListLocations(repo domain.Repository) *ListLocations {
	return &ListLocations{repo: repo}
}

func (uc *ListLocations) Execute(ctx context.Context) ([]models.Location, error) {
	locations, err := uc.repo.ListLocations(ctx)
	if err != nil {
		return nil, httperr.Operation("list_locations", err)
	}
	return locations, nil
}

type ListBarbersByLocation struct {
	repo domain.Repository
}

func NewListBarbersByLocation(repo domain.Repository) *ListBarbersByLocation {
	return &ListBarbersByLocation{repo: repo}
}

// Execute lists the active barbers of a known location.
func (uc *ListBarbersByLocation) Execute(ctx context.Context, locationID string) ([]models.Barber, error) {
	if _, err := uc.repo.GetLocation(ctx, locationID); err != nil {
		return nil, httperr.Operation("get_location", err)
	}

	barbers, err := uc.repo.ListActiveBarbersByLocation(ctx, locationID)
	if err != nil {
		return nil, httperr.Operation("list_barbers", err)
	}
	return barbers, nil
}

// BookingTarget is the barber and location an appointment is booked with.
type BookingTarget struct {
	Barber   models.Barber
	Location models.Location
}

type ResolveBookingTarget struct {
	repo domain.Repository
}

func NewResolveBookingTarget(repo domain.Repository) *ResolveBookingTarget {
	return &ResolveBookingTarget{repo: repo}
}

// Execute checks that the barber is active and works at the location.
func (uc *ResolveBookingTarget) Execute(ctx context.Context, barberID, locationID string) (*BookingTarget, error) {
	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.Operation("get_barber", err)
	}
	if !barber.IsActive || barber.LocationID != locationID {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	location, err := uc.repo.GetLocation(ctx, locationID)
	if err != nil {
		return nil, httperr.Operation("get_location", err)
	}

	return &BookingTarget{Barber: *barber, Location: *location}, nil
}
