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

// ConstellationHandler serves the constellation catalog. Mutations are
// credential-gated at the router; reads are open.
type ConstellationHandler struct {
	Store  repository.ConstellationStore
	Cache  *cache.Cache
	Events *queue.Publisher
}

func NewConstellationHandler(store repository.ConstellationStore, cc *cache.Cache, ev *queue.Publisher) *ConstellationHandler {
	return &ConstellationHandler{Store: store, Cache: cc, Events: ev}
}

type constellationCreateReq struct {
	ConstellationID   uint64  `json:"constellation_id"`
	ConstellationName string  `json:"constellation_name"`
	GalaxyID          uint64  `json:"galaxy_id"`
	AddedBy           uint64  `json:"added_by"`
	VerifiedBy        *uint64 `json:"verified_by"`
}

// Register creates a constellation. Unlike the other catalogs,
// added_by is required here.
func (h *ConstellationHandler) Register(c echo.Context) error {
	var req constellationCreateReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateConstellationCreate(req.ConstellationName, req.GalaxyID, req.AddedBy); errs.HasErrors() {
		return validationFailed(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	addedBy := req.AddedBy
	cn := model.Constellation{
		ConstellationID:   req.ConstellationID,
		ConstellationName: req.ConstellationName,
		GalaxyID:          req.GalaxyID,
		AddedBy:           &addedBy,
		VerifiedBy:        req.VerifiedBy,
	}
	if _, err := h.Store.Create(ctx, &cn); err != nil {
		log.Printf("constellation: create failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "constellation")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "constellation", Action: queue.ActionCreated, ID: cn.ConstellationID, Name: cn.ConstellationName,
	})
	return c.JSON(http.StatusCreated, echo.Map{
		"result":  cn.Summary(),
		"message": "Constellation successfully registered.",
	})
}

// Get returns the full projection of one constellation.
func (h *ConstellationHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Store.Retrieve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConstellationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Constellation not found."})
		}
		log.Printf("constellation: retrieve failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  d,
		"message": "Constellation successfully retrieved.",
	})
}

// Update applies a partial patch; the path id always wins.
func (h *ConstellationHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch model.ConstellationPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrConstellationNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Constellation to update not found."})
		}
		log.Printf("constellation: update failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "constellation")
	name := ""
	if patch.ConstellationName != nil {
		name = *patch.ConstellationName
	}
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "constellation", Action: queue.ActionUpdated, ID: id, Name: name,
	})
	return c.JSON(http.StatusAccepted, echo.Map{"message": "Constellation successfully updated."})
}

// Delete removes a constellation. Stars keep their constellation_id.
func (h *ConstellationHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrConstellationNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Constellation to delete not found."})
		}
		log.Printf("constellation: delete failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "constellation")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "constellation", Action: queue.ActionDeleted, ID: id,
	})
	return c.NoContent(http.StatusNoContent)
}

// List returns partial projections of all constellations.
func (h *ConstellationHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if body, ok := h.Cache.GetList(ctx, "constellation"); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Printf("constellation: list failed: %v", err)
		return internalError(c)
	}
	body, err := json.Marshal(echo.Map{
		"result":  list,
		"message": "Constellations successfully retrieved.",
	})
	if err != nil {
		return internalError(c)
	}
	h.Cache.SetList(ctx, "constellation", body)
	return c.JSONBlob(http.StatusOK, body)
}
