package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/core/ports"
)

type InviteHandler struct {
	inviteService ports.InviteService
}

func NewInviteHandler(inviteService ports.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type createInviteRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	JobTitle string `json:"job_title" validate:"required"`
}

// Create invites an employee to join the manager's team. Payloads are fully
// validated; a well-formed invite currently answers 501 because the invite
// store and email queue are not built yet.
//
// @Summary      Invite an employee
// @Tags         invite
// @Accept       json
// @Produce      json
// @Param        body  body      createInviteRequest  true  "Invite details"
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      501   {object}  map[string]any
// @Router       /invites/ [post]
func (h *InviteHandler) Create(c echo.Context) error {
	var req createInviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.inviteService.Create(c.Request().Context(), req.Name, req.Email, req.JobTitle)
}
