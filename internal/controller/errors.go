package controller

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/catalog/internal/entity"
)

type ErrorResponse struct {
	ErrorCode string    `json:"errorCode"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Errors    []string  `json:"errors,omitempty"`
}

func newErrorResponse(c *gin.Context, errorCode, message string, fieldErrors ...string) ErrorResponse {
	return ErrorResponse{
		ErrorCode: errorCode,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
		Errors:    fieldErrors,
	}
}

// convertErr maps domain errors onto the HTTP surface. NotFound keeps its
// original message so callers can tell which entity was missing.
func (i *implementation) convertErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrAuthorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, newErrorResponse(c, "NOT_FOUND", err.Error()))
	case errors.Is(err, entity.ErrBookNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, newErrorResponse(c, "NOT_FOUND", err.Error()))
	case errors.Is(err, entity.ErrIllegalTransition):
		c.AbortWithStatusJSON(http.StatusBadRequest, newErrorResponse(c, "ILLEGAL_STATE", err.Error()))
	case errors.Is(err, entity.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, newErrorResponse(c, "BAD_REQUEST", err.Error()))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			newErrorResponse(c, "INTERNAL_SERVER_ERROR", "internal server error"))
	}
}

// validationFailed renders an ozzo validation error as one field error per line.
func (i *implementation) validationFailed(c *gin.Context, err error) {
	var fieldErrors []string

	var errs validation.Errors
	if errors.As(err, &errs) {
		for field, fieldErr := range errs {
			fieldErrors = append(fieldErrors, field+": "+fieldErr.Error())
		}
		sort.Strings(fieldErrors)
	} else {
		fieldErrors = append(fieldErrors, err.Error())
	}

	c.AbortWithStatusJSON(http.StatusBadRequest,
		newErrorResponse(c, "VALIDATION_FAILED", "request validation failed", fieldErrors...))
}
