// Package handler implements the request boundary: binding, field
// validation, status mapping and dispatch into the catalogs. Catalogs
// never see a payload with a missing required field.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/pkg/validator"
)

// dbTimeout bounds every store call issued from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id."})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body."})
}

func validationFailed(c echo.Context, errs validator.ValidationErrors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"message": "Validation failed.",
		"errors":  errs,
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error."})
}

// Health is a liveness probe for load balancers.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
