package catalog

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func seedCatalog(t *testing.T) (*repository.MemoryRepository, *models.Location, *models.Barber, *models.Barber) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	loc := &models.Location{Name: "Mitre", IsOpen: true}
	_ = repo.CreateLocation(ctx, loc)
	_ = repo.CreateLocation(ctx, &models.Location{Name: "Gerli", IsOpen: true})

	active := &models.Barber{LocationID: loc.ID, Name: "Juan", IsActive: true}
	retired := &models.Barber{LocationID: loc.ID, Name: "Pedro", IsActive: false}
	_ = repo.CreateBarber(ctx, active)
	_ = repo.CreateBarber(ctx, retired)

	return repo, loc, active, retired
}

func TestListBarbersByLocation(t *testing.T) {
	repo, loc, active, _ := seedCatalog(t)
	ctx := context.Background()

	barbers, err := NewListBarbersByLocation(repo).Execute(ctx, loc.ID)
	if err != nil {
		t.Fatalf("list barbers: %v", err)
	}
	if len(barbers) != 1 || barbers[0].ID != active.ID {
		t.Fatalf("expected only the active barber, got %+v", barbers)
	}

	if _, err := NewListBarbersByLocation(repo).Execute(ctx, "missing"); !httperr.IsBusiness(err, "location_not_found") {
		t.Fatalf("expected location_not_found, got %v", err)
	}

	locations, err := NewListLocations(repo).Execute(ctx)
	if err != nil || len(locations) != 2 {
		t.Fatalf("locations = %+v err=%v", locations, err)
	}
}

func TestResolveBookingTarget(t *testing.T) {
	repo, loc, active, retired := seedCatalog(t)
	ctx := context.Background()
	uc := NewResolveBookingTarget(repo)

	target, err := uc.Execute(ctx, active.ID, loc.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if target.Barber.Name != "Juan" || target.Location.Name != "Mitre" {
		t.Fatalf("unexpected target %+v", target)
	}

	if _, err := uc.Execute(ctx, retired.ID, loc.ID); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found for inactive barber, got %v", err)
	}
	if _, err := uc.Execute(ctx, active.ID, "other-location"); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found for wrong location, got %v", err)
	}
}
