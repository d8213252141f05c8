package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/domain/account"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

type SignupInput struct {
	LoginID  string
	Password string

	// restaurant only
	Name  string
	Phone string
}

type SignupResult struct {
	ID      uint   `json:"id"`
	LoginID string `json:"loginId"`
}

type Signup struct {
	repo account.Repository
}

func NewSignup(repo account.Repository) *Signup {
	return &Signup{repo: repo}
}

func (uc *Signup) Execute(
	ctx context.Context,
	role auth.Role,
	in SignupInput,
) (*SignupResult, error) {

	loginID := account.NormalizeLoginID(in.LoginID)
	if err := account.ValidateLoginID(loginID); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	switch role {
	case auth.RoleCustomer:
		c := &models.Customer{LoginID: loginID, PasswordHash: hash}
		if err := uc.repo.CreateCustomer(ctx, c); err != nil {
			return nil, err
		}
		return &SignupResult{ID: c.ID, LoginID: c.LoginID}, nil

	case auth.RoleRestaurant:
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = loginID
		}
		r := &models.Restaurant{
			Name:         name,
			LoginID:      loginID,
			PasswordHash: hash,
			Phone:        in.Phone,
		}
		if err := uc.repo.CreateRestaurant(ctx, r); err != nil {
			return nil, err
		}
		return &SignupResult{ID: r.ID, LoginID: r.LoginID}, nil
	}

	return nil, fmt.Errorf("unknown role %q", role)
}
