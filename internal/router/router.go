// Package router maps the HTTP surface onto handlers and applies the
// credential gate per the access policy.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/internal/handler"
	"github.com/toy-soldier/starzz/internal/middleware"
)

// Register wires every route. The gating below is the confirmed
// policy, asymmetries included: galaxies are wholly open, users are
// wholly gated, constellations and stars gate mutations only.
func Register(e *echo.Echo, jwtSecret string,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	galaxies *handler.GalaxyHandler,
	constellations *handler.ConstellationHandler,
	stars *handler.StarHandler,
) {
	gate := middleware.JWTAuth(jwtSecret)

	e.GET("/healthz", handler.Health)
	e.POST("/login", auth.Login)

	// Users: every operation, reads included, requires a credential.
	e.POST("/users", users.Register, gate)
	e.GET("/users", users.List, gate)
	e.GET("/users/:id", users.Get, gate)
	e.PUT("/users/:id", users.Update, gate)
	e.DELETE("/users/:id", users.Delete, gate)

	// Galaxies: no credential anywhere.
	e.POST("/galaxies", galaxies.Register)
	e.GET("/galaxies", galaxies.List)
	e.GET("/galaxies/:id", galaxies.Get)
	e.PUT("/galaxies/:id", galaxies.Update)
	e.DELETE("/galaxies/:id", galaxies.Delete)

	// Constellations: mutations gated, reads open.
	e.POST("/constellations", constellations.Register, gate)
	e.GET("/constellations", constellations.List)
	e.GET("/constellations/:id", constellations.Get)
	e.PUT("/constellations/:id", constellations.Update, gate)
	e.DELETE("/constellations/:id", constellations.Delete, gate)

	// Stars: mutations gated, reads open.
	e.POST("/stars", stars.Register, gate)
	e.GET("/stars", stars.List)
	e.GET("/stars/:id", stars.Get)
	e.PUT("/stars/:id", stars.Update, gate)
	e.DELETE("/stars/:id", stars.Delete, gate)
}
