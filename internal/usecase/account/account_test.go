package account

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	reg := NewRegisterUser(repo, nil)
	user, err := reg.Execute(ctx, RegisterInput{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ana@example.com" || user.Role != models.RoleClient || user.Points != 0 {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored in clear")
	}

	auth := NewAuthenticate(repo)
	got, err := auth.Execute(ctx, "ANA@example.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated %s, want %s", got.ID, user.ID)
	}

	if _, err := auth.Execute(ctx, "ana@example.com", "wrong"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
	if _, err := auth.Execute(ctx, "nobody@example.com", "secret1"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials for unknown email, got %v", err)
	}

	if _, err := reg.Execute(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret2"}); !httperr.IsBusiness(err, "email_taken") {
		t.Fatalf("expected email_taken, got %v", err)
	}

	profile, err := NewGetProfile(repo).Execute(ctx, user.ID)
	if err != nil || profile.Email != user.Email {
		t.Fatalf("profile = %+v err=%v", profile, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	rejectAll := func(ctx context.Context, email string) bool { return false }

	cases := []struct {
		name  string
		uc    *RegisterUser
		input RegisterInput
		code  string
	}{
		{"bad email", NewRegisterUser(repo, nil), RegisterInput{Email: "ana", Password: "secret1"}, "invalid_email"},
		{"short password", NewRegisterUser(repo, nil), RegisterInput{Email: "ana@example.com", Password: "123"}, "weak_password"},
		{"bad domain", NewRegisterUser(repo, rejectAll), RegisterInput{Email: "ana@example.com", Password: "secret1"}, "invalid_email_domain"},
	}
	for _, tc := range cases {
		if _, err := tc.uc.Execute(ctx, tc.input); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}
