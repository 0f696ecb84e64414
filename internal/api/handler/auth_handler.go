package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/api/metrics"
	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/ports"
	"github.com/starsky/backend/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token authenticates a user and returns a bearer token.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_body").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.LoginsTotal.WithLabelValues("invalid_body").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(service.TokenTTL.Seconds()),
	})
}

// Validate is the token validation probe. The Auth middleware has already
// verified the token by the time this runs, so an empty 200 is the answer.
//
// @Summary      Validate the presented bearer token
// @Tags         auth
// @Success      200
// @Failure      401  {object}  map[string]any
// @Router       /auth/token/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
