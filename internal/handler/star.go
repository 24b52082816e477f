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

// StarHandler serves the star catalog. Mutations are credential-gated
// at the router; reads are open.
type StarHandler struct {
	Store  repository.StarStore
	Cache  *cache.Cache
	Events *queue.Publisher
}

func NewStarHandler(store repository.StarStore, cc *cache.Cache, ev *queue.Publisher) *StarHandler {
	return &StarHandler{Store: store, Cache: cc, Events: ev}
}

type starCreateReq struct {
	StarID            uint64  `json:"star_id"`
	StarName          string  `json:"star_name"`
	StarType          string  `json:"star_type"`
	ConstellationID   uint64  `json:"constellation_id"`
	RightAscension    float64 `json:"right_ascension"`
	Declination       float64 `json:"declination"`
	ApparentMagnitude float64 `json:"apparent_magnitude"`
	SpectralType      string  `json:"spectral_type"`
	AddedBy           *uint64 `json:"added_by"`
	VerifiedBy        *uint64 `json:"verified_by"`
}

// Register creates a star.
func (h *StarHandler) Register(c echo.Context) error {
	var req starCreateReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStarCreate(req.StarName, req.ConstellationID); errs.HasErrors() {
		return validationFailed(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s := model.Star{
		StarID:            req.StarID,
		StarName:          req.StarName,
		StarType:          req.StarType,
		ConstellationID:   req.ConstellationID,
		RightAscension:    req.RightAscension,
		Declination:       req.Declination,
		ApparentMagnitude: req.ApparentMagnitude,
		SpectralType:      req.SpectralType,
		AddedBy:           req.AddedBy,
		VerifiedBy:        req.VerifiedBy,
	}
	if _, err := h.Store.Create(ctx, &s); err != nil {
		log.Printf("star: create failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "star")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "star", Action: queue.ActionCreated, ID: s.StarID, Name: s.StarName,
	})
	return c.JSON(http.StatusCreated, echo.Map{
		"result":  s.Summary(),
		"message": "Star successfully registered.",
	})
}

// Get returns the full projection of one star.
func (h *StarHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Store.Retrieve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Star not found."})
		}
		log.Printf("star: retrieve failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  d,
		"message": "Star successfully retrieved.",
	})
}

// Update applies a partial patch; the path id always wins.
func (h *StarHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch model.StarPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrStarNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Star to update not found."})
		}
		log.Printf("star: update failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "star")
	name := ""
	if patch.StarName != nil {
		name = *patch.StarName
	}
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "star", Action: queue.ActionUpdated, ID: id, Name: name,
	})
	return c.JSON(http.StatusAccepted, echo.Map{"message": "Star successfully updated."})
}

// Delete removes a star.
func (h *StarHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStarNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Star to delete not found."})
		}
		log.Printf("star: delete failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "star")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "star", Action: queue.ActionDeleted, ID: id,
	})
	return c.NoContent(http.StatusNoContent)
}

// List returns partial projections of all stars.
func (h *StarHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if body, ok := h.Cache.GetList(ctx, "star"); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Printf("star: list failed: %v", err)
		return internalError(c)
	}
	body, err := json.Marshal(echo.Map{
		"result":  list,
		"message": "Stars successfully retrieved.",
	})
	if err != nil {
		return internalError(c)
	}
	h.Cache.SetList(ctx, "star", body)
	return c.JSONBlob(http.StatusOK, body)
}
