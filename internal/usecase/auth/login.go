package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/domain/account"
)

type Login struct {
	repo   account.Repository
	issuer *auth.TokenIssuer
}

func NewLogin(repo account.Repository, issuer *auth.TokenIssuer) *Login {
	return &Login{repo: repo, issuer: issuer}
}

// Execute authenticates within role's namespace. Unknown login ids and
// wrong passwords fail identically.
func (uc *Login) Execute(
	ctx context.Context,
	role auth.Role,
	loginID string,
	password string,
) (auth.Token, error) {

	creds, err := uc.repo.FindCredentials(ctx, role, account.NormalizeLoginID(loginID))
	if errors.Is(err, account.ErrAccountNotFound) {
		auth.BurnPasswordCheck(password)
		return auth.Token{}, account.ErrInvalidCredentials
	}
	if err != nil {
		return auth.Token{}, err
	}

	if !auth.CheckPassword(creds.PasswordHash, password) {
		return auth.Token{}, account.ErrInvalidCredentials
	}

	return uc.issuer.Issue(auth.Principal{
		ID:      creds.ID,
		LoginID: creds.LoginID,
		Role:    role,
	})
}
