package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root handles the liveness check endpoint
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "CSV Query API is running",
	})
}

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": "csv-query-service",
	})
}
