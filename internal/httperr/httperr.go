package httperr

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Code       string `json:"code"`
	Timestamp  string `json:"timestamp"`
}

// Write renders err as the error envelope. Errors that are not business
// errors are logged and reported as a generic internal failure.
func Write(c *gin.Context, err error) {
	kind := KindOf(err)
	status := StatusOf(kind)

	message := "internal server error"
	code := "internal_error"

	var be BusinessError
	if kind != KindInternal && errors.As(err, &be) {
		message = be.Message
		code = be.Code
	} else {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("request failed")
	}

	Abort(c, status, code, message)
}

// Abort writes the envelope with an explicit status and stops the chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Success:    false,
		Message:    message,
		StatusCode: status,
		Error:      http.StatusText(status),
		Code:       code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func BadRequest(c *gin.Context, message string) {
	Abort(c, http.StatusBadRequest, "invalid_request", message)
}
