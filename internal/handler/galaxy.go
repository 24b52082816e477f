package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/internal/cache"
	"github.com/toy-soldier/starzz/internal/model"
	"github.com/toy-soldier/starzz/internal/queue"
	"github.com/toy-soldier/starzz/internal/repository"
	"github.com/toy-soldier/starzz/pkg/validator"
)

// GalaxyHandler serves the galaxy catalog. Every endpoint here is
// open; galaxies are the one entity the access policy leaves
// ungated.
type GalaxyHandler struct {
	Store  repository.GalaxyStore
	Cache  *cache.Cache
	Events *queue.Publisher
}

func NewGalaxyHandler(store repository.GalaxyStore, cc *cache.Cache, ev *queue.Publisher) *GalaxyHandler {
	return &GalaxyHandler{Store: store, Cache: cc, Events: ev}
}

type galaxyCreateReq struct {
	GalaxyID    uint64  `json:"galaxy_id"`
	GalaxyName  string  `json:"galaxy_name"`
	GalaxyType  string  `json:"galaxy_type"`
	DistanceMly float64 `json:"distance_mly"`
	Redshift    float64 `json:"redshift"`
	MassSolar   float64 `json:"mass_solar"`
	DiameterLy  float64 `json:"diameter_ly"`
	AddedBy     *uint64 `json:"added_by"`
	VerifiedBy  *uint64 `json:"verified_by"`
}

// Register creates a galaxy. The caller may supply galaxy_id; zero
// lets the store assign one.
func (h *GalaxyHandler) Register(c echo.Context) error {
	var req galaxyCreateReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateGalaxyCreate(req.GalaxyName); errs.HasErrors() {
		return validationFailed(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g := model.Galaxy{
		GalaxyID:    req.GalaxyID,
		GalaxyName:  req.GalaxyName,
		GalaxyType:  req.GalaxyType,
		DistanceMly: req.DistanceMly,
		Redshift:    req.Redshift,
		MassSolar:   req.MassSolar,
		DiameterLy:  req.DiameterLy,
		AddedBy:     req.AddedBy,
		VerifiedBy:  req.VerifiedBy,
	}
	if _, err := h.Store.Create(ctx, &g); err != nil {
		log.Printf("galaxy: create failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "galaxy")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "galaxy", Action: queue.ActionCreated, ID: g.GalaxyID, Name: g.GalaxyName,
	})
	return c.JSON(http.StatusCreated, echo.Map{
		"result":  g.Summary(),
		"message": "Galaxy successfully registered.",
	})
}

// Get returns the full projection of one galaxy.
func (h *GalaxyHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Store.Retrieve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGalaxyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Galaxy not found."})
		}
		log.Printf("galaxy: retrieve failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  d,
		"message": "Galaxy successfully retrieved.",
	})
}

// Update applies a partial patch. The path id always wins; any id in
// the body is ignored. A missing target is a 400, not a 404.
func (h *GalaxyHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch model.GalaxyPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrGalaxyNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Galaxy to update not found."})
		}
		log.Printf("galaxy: update failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "galaxy")
	name := ""
	if patch.GalaxyName != nil {
		name = *patch.GalaxyName
	}
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "galaxy", Action: queue.ActionUpdated, ID: id, Name: name,
	})
	return c.JSON(http.StatusAccepted, echo.Map{"message": "Galaxy successfully updated."})
}

// Delete removes a galaxy. Constellations keep their galaxy_id; the
// reference just projects as {} afterwards.
func (h *GalaxyHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGalaxyNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Galaxy to delete not found."})
		}
		log.Printf("galaxy: delete failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "galaxy")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "galaxy", Action: queue.ActionDeleted, ID: id,
	})
	return c.NoContent(http.StatusNoContent)
}

// List returns partial projections of all galaxies. The response body
// is cached whole; mutations invalidate it.
func (h *GalaxyHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if body, ok := h.Cache.GetList(ctx, "galaxy"); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Printf("galaxy: list failed: %v", err)
		return internalError(c)
	}
	body, err := json.Marshal(echo.Map{
		"result":  list,
		"message": "Galaxies successfully retrieved.",
	})
	if err != nil {
		return internalError(c)
	}
	h.Cache.SetList(ctx, "galaxy", body)
	return c.JSONBlob(http.StatusOK, body)
}
