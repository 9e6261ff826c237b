package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gearshare/internal/sharingerrors"
	"gearshare/utils"

	"github.com/gin-gonic/gin"
)

// IdentityHeader carries the verified caller id set by the upstream tier.
const IdentityHeader = "X-Sharer-User-Id"

// CallerID extracts the trusted caller id from the request.
func CallerID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(IdentityHeader))
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Validation error", "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and
// error category
func MapErrorToHTTP(err error) (int, string) {
	var unknownState *sharingerrors.UnknownStateError
	if errors.As(err, &unknownState) {
		return http.StatusBadRequest, fmt.Sprintf("Unknown state: %s", unknownState.Value)
	}
	switch {
	case errors.Is(err, sharingerrors.ErrNotFound):
		return http.StatusNotFound, "IdNotFound error"
	case errors.Is(err, sharingerrors.ErrEmailExists):
		return http.StatusConflict, "EmailAlreadyExists error"
	case errors.Is(err, sharingerrors.ErrValidation):
		return http.StatusBadRequest, "Validation error"
	case errors.Is(err, sharingerrors.ErrUnavailable),
		errors.Is(err, sharingerrors.ErrAlreadyDecided):
		return http.StatusBadRequest, "Unavailable error"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// RespondError maps the error, sends the error body and logs it.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, category := MapErrorToHTTP(err)
	utils.JSONError(c, status, category, err.Error())
	utils.Warn(handlerName+": request failed", map[string]any{
		"status": status,
		"error":  err.Error(),
	})
}

// ParsePaging reads the from/size query parameters with the platform
// defaults. from must be >= 0 and size > 0; the services do not clamp.
func ParsePaging(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("%w - from must be a non-negative integer", sharingerrors.ErrValidation)
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		return 0, 0, fmt.Errorf("%w - size must be a positive integer", sharingerrors.ErrValidation)
	}
	return from, size, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
