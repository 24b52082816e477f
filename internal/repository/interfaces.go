package repository

import (
	"context"

	"github.com/toy-soldier/starzz/internal/model"
)

// The store interfaces decouple handlers from MySQL so tests can
// substitute in-memory fakes. Every catalog shares the same five
// operations; UserStore adds the username lookup that login needs.

type UserStore interface {
	Create(ctx context.Context, u *model.User) (uint64, error)
	Retrieve(ctx context.Context, id uint64) (*model.UserDetail, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	Update(ctx context.Context, id uint64, patch model.UserPatch) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.UserSummary, error)
}

type GalaxyStore interface {
	Create(ctx context.Context, g *model.Galaxy) (uint64, error)
	Retrieve(ctx context.Context, id uint64) (*model.GalaxyDetail, error)
	Update(ctx context.Context, id uint64, patch model.GalaxyPatch) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.GalaxySummary, error)
}

type ConstellationStore interface {
	Create(ctx context.Context, c *model.Constellation) (uint64, error)
	Retrieve(ctx context.Context, id uint64) (*model.ConstellationDetail, error)
	Update(ctx context.Context, id uint64, patch model.ConstellationPatch) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.ConstellationSummary, error)
}

type StarStore interface {
	Create(ctx context.Context, s *model.Star) (uint64, error)
	Retrieve(ctx context.Context, id uint64) (*model.StarDetail, error)
	Update(ctx context.Context, id uint64, patch model.StarPatch) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.StarSummary, error)
}
