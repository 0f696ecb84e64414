package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/api/middleware"
	"github.com/starsky/backend/internal/core/ports"
)

type TeamHandler struct {
	teamService ports.TeamService
}

func NewTeamHandler(teamService ports.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type teamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// List returns the teams visible to the authenticated user: owned teams for
// managers, membership teams for employees.
//
// @Summary      List own teams
// @Tags         team
// @Produce      json
// @Success      200  {array}   teamResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	teams, err := h.teamService.ListForPrincipal(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	resp := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, teamResponse{ID: t.ID, Name: t.Name})
	}
	return c.JSON(http.StatusOK, resp)
}
