package handler

import (
	"salesboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the HTTP server is accepting requests
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
