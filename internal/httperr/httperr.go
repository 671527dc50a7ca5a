package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusOf maps a business error kind to its HTTP status.
func StatusOf(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err to the client. Business errors are surfaced verbatim;
// anything else is logged and hidden behind internal_error.
func Respond(c *gin.Context, log logrus.FieldLogger, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusOf(be.Kind), be.Code, be.Kind.String())
		return
	}

	log.WithError(err).
		WithField("path", c.FullPath()).
		Error("request failed")
	Internal(c, "internal_error", "internal error")
}
