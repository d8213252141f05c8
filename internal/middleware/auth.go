package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
)

const ContextPrincipal = "principal"

var (
	errMissingAuthorization = httperr.New(httperr.KindUnauthorized, "missing_authorization_header", "authorization header is required")
	errInvalidAuthorization = httperr.New(httperr.KindUnauthorized, "invalid_authorization_header", "authorization header must be 'Bearer <token>'")
	errInvalidToken         = httperr.New(httperr.KindUnauthorized, "invalid_token", "token is invalid or expired")
	errWrongRole            = httperr.New(httperr.KindForbidden, "forbidden", "this account type cannot use this endpoint")
)

type TokenParser interface {
	Parse(raw string) (auth.Principal, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the principal in the context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Write(c, errMissingAuthorization)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Write(c, errInvalidAuthorization)
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Write(c, errInvalidToken)
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Write(c, errInvalidToken)
			return
		}
		if p.Role != role {
			httperr.Write(c, errWrongRole)
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
