package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
)

// ======================================================
// PRINCIPAL
// ======================================================

// principal returns the authenticated caller. Routes without the auth
// middleware answer 401.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		httperr.Write(c, httperr.ErrUnauthorized)
		return auth.Principal{}, false
	}
	return p, true
}

// ======================================================
// PATH PARAMS
// ======================================================

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// BINDING ERRORS
// ======================================================

func bindFailed(c *gin.Context, err error) {
	httperr.BadRequest(c, bindMessage(err))
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "malformed request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "unique":
		return field + " must not contain duplicates"
	case "phone":
		return field + " must be 9 to 11 digits"
	case "menucategory":
		return field + " must be one of western, japanese, chinese"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
