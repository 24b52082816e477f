package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/internal/cache"
	"github.com/toy-soldier/starzz/internal/config"
	"github.com/toy-soldier/starzz/internal/model"
	"github.com/toy-soldier/starzz/internal/queue"
	"github.com/toy-soldier/starzz/internal/repository"
	"github.com/toy-soldier/starzz/internal/utils"
	"github.com/toy-soldier/starzz/pkg/validator"
)

// UserHandler serves the identity store. Every user endpoint is
// credential-gated at the router, including reads — users are the only
// entity whose list is protected.
type UserHandler struct {
	Cfg    config.Config
	Store  repository.UserStore
	Cache  *cache.Cache
	Events *queue.Publisher
}

func NewUserHandler(cfg config.Config, store repository.UserStore, cc *cache.Cache, ev *queue.Publisher) *UserHandler {
	return &UserHandler{Cfg: cfg, Store: store, Cache: cc, Events: ev}
}

type userCreateReq struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// Register creates a user. The plaintext password is hashed here and
// discarded; the store only ever sees the hash.
func (h *UserHandler) Register(c echo.Context) error {
	var req userCreateReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateUserCreate(req.Username, req.Email, req.Password); errs.HasErrors() {
		return validationFailed(c, errs)
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		log.Printf("user: hash password failed: %v", err)
		return internalError(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u := model.User{
		UserID:      req.UserID,
		Username:    req.Username,
		Email:       req.Email,
		Password:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}
	if _, err := h.Store.Create(ctx, &u); err != nil {
		log.Printf("user: create failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "user")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "user", Action: queue.ActionCreated, ID: u.UserID, Name: u.Summary().FullName,
	})
	return c.JSON(http.StatusCreated, echo.Map{
		"result":  u.Summary(),
		"message": "User successfully registered.",
	})
}

// Get returns the full projection of one user (never the password).
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Store.Retrieve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found."})
		}
		log.Printf("user: retrieve failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  d,
		"message": "User successfully retrieved.",
	})
}

// Update applies a partial patch; a supplied password is re-hashed
// before it reaches the store.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password, h.Cfg.BcryptCost)
		if err != nil {
			log.Printf("user: hash password failed: %v", err)
			return internalError(c)
		}
		patch.Password = &hash
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User to update not found."})
		}
		log.Printf("user: update failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "user")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "user", Action: queue.ActionUpdated, ID: id,
	})
	return c.JSON(http.StatusAccepted, echo.Map{"message": "User successfully updated."})
}

// Delete removes a user. Attribution references in the other catalogs
// stay in place and project as {} from now on.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User to delete not found."})
		}
		log.Printf("user: delete failed: %v", err)
		return internalError(c)
	}
	h.Cache.Invalidate(ctx, "user")
	_ = h.Events.Publish(ctx, queue.CatalogEvent{
		Entity: "user", Action: queue.ActionDeleted, ID: id,
	})
	return c.NoContent(http.StatusNoContent)
}

// List returns partial projections of all users.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if body, ok := h.Cache.GetList(ctx, "user"); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	list, err := h.Store.List(ctx)
	if err != nil {
		log.Printf("user: list failed: %v", err)
		return internalError(c)
	}
	body, err := json.Marshal(echo.Map{
		"result":  list,
		"message": "Users successfully retrieved.",
	})
	if err != nil {
		return internalError(c)
	}
	h.Cache.SetList(ctx, "user", body)
	return c.JSONBlob(http.StatusOK, body)
}
