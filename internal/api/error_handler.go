package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/starsky/backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The HTTP
// status is repeated in the body so clients can branch without inspecting
// response headers.
type errorResponse struct {
	ErrorCode   int    `json:"error_code"`
	ErrorTitle  string `json:"error_title"`
	ErrorDetail string `json:"error_detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {error_code, error_title, error_detail}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, title, detail := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{ErrorCode: code, ErrorTitle: title, ErrorDetail: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Input-shape failures carry their own client-safe detail.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Invalid Body", ve.Detail
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to fixed HTTP codes. Unknown user and wrong
	// password share one response.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusNotFound, "Invalid User", "User not found / invalid password."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Not Found", "User does not exist in database."
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Already Exists", "User with this email already exists."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Unauthorized", "Bearer token is missing, invalid or expired."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden", "Role does not allow access to this resource."
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented, "Not Implemented", "This feature is not implemented yet."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", "internal server error"
}
