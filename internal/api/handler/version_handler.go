package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VersionHandler handles GET /version, reporting the running build version.
type VersionHandler struct {
	version     string
	environment string
}

func NewVersionHandler(version, environment string) *VersionHandler {
	return &VersionHandler{version: version, environment: environment}
}

type versionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (h *VersionHandler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, versionResponse{
		Version:     h.version,
		Environment: h.environment,
	})
}
