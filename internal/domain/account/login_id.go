package account

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/reservation-api/internal/httperr"
)

const (
	MinLoginIDLength = 4
	MaxLoginIDLength = 50
)

var ErrInvalidLoginID = httperr.New(httperr.KindInvalidInput, "invalid_login_id", "loginId must be 4 to 50 characters")

// NormalizeLoginID is applied by signup and login alike.
func NormalizeLoginID(loginID string) string {
	return strings.TrimSpace(loginID)
}

// ValidateLoginID checks a normalized login id.
func ValidateLoginID(loginID string) error {
	n := utf8.RuneCountInString(loginID)
	if n < MinLoginIDLength || n > MaxLoginIDLength {
		return ErrInvalidLoginID
	}
	return nil
}
