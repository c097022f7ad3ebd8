package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/account"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type RegisterUser struct {
	repo domain.Repository
	// checkDomain is optional; nil skips the DNS check.
	checkDomain func(ctx context.Context, email string) bool
}

func NewRegisterUser(
	repo domain.Repository,
	checkDomain func(ctx context.Context, email string) bool,
) *RegisterUser {
	return &RegisterUser{
		repo:        repo,
		checkDomain: checkDomain,
	}
}

// Execute creates a client account with a zero points balance.
func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusinessMsg("invalid_email", "invalid email address")
	}
	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return nil, httperr.ErrBusinessMsg("invalid_email_domain", "the email domain does not look valid")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrBusinessMsg("weak_password", "password must have at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Role:         models.RoleClient,
		Points:       0,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, httperr.Operation("create_user", err)
	}

	return user, nil
}
