package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/internal/config"
	"github.com/toy-soldier/starzz/internal/repository"
	"github.com/toy-soldier/starzz/internal/utils"
	"github.com/toy-soldier/starzz/pkg/validator"
)

// AuthHandler issues credentials. There is no lockout, rate limiting
// or rotation; a credential is a self-contained signed token and the
// identity store is the only persisted state.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserStore
}

func NewAuthHandler(cfg config.Config, users repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies a username/password pair and returns a signed token.
// Duplicate usernames resolve to the first match; a wrong password and
// an unknown user are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateLogin(req.Username, req.Password); errs.HasErrors() {
		return validationFailed(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials."})
		}
		log.Printf("login: lookup failed: %v", err)
		return internalError(c)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials."})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("login: issue token failed: %v", err)
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Logged in as %s.", u.Username),
		"token":   access.Token,
	})
}
