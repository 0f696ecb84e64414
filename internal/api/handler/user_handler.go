package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/api/metrics"
	"github.com/starsky/backend/internal/api/middleware"
	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	JobTitle string `json:"job_title" validate:"required"`
}

type userResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	JobTitle         string  `json:"job_title"`
	PhoneNumber      *string `json:"phone_number"`
	NotificationType string  `json:"notification_type"`
	Role             string  `json:"role"`
	DateCreated      string  `json:"date_created"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		JobTitle:         u.JobTitle,
		PhoneNumber:      u.PhoneNumber,
		NotificationType: u.NotificationType.String(),
		Role:             u.Role.String(),
		DateCreated:      u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Register creates a new user account with the manager role.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /users/ [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid_body").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.JobTitle)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		default:
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				metrics.RegistrationsTotal.WithLabelValues("invalid_body").Inc()
			}
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Self returns the profile of the authenticated user.
//
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /user [get]
func (h *UserHandler) Self(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.userService.GetByID(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateSelf is not built yet.
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	return domain.ErrNotImplemented
}
