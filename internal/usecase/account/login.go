package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/account"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute answers invalid_credentials for an unknown email and for a wrong
// password alike.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	user, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, httperr.Operation("get_user_by_email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return user, nil
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, httperr.Operation("get_user", err)
	}
	return user, nil
}
