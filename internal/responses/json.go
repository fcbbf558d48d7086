package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/apperrors"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Error maps the service-layer sentinel errors onto HTTP status codes.
// Anything unrecognized is a 500 with a generic message so database
// details never reach the client.
func Error(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		Fail(c, http.StatusBadRequest, err, message)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, nil, "Invalid credentials. Please contact the administrator.")
	case errors.Is(err, apperrors.ErrForbidden):
		Fail(c, http.StatusForbidden, nil, "Access denied.")
	case errors.Is(err, apperrors.ErrNotFound):
		Fail(c, http.StatusNotFound, nil, message)
	case errors.Is(err, apperrors.ErrConflict):
		Fail(c, http.StatusConflict, err, message)
	default:
		Fail(c, http.StatusInternalServerError, nil, message)
	}
}
