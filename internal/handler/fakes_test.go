package handler_test

import (
	"context"
	"sort"

	"github.com/toy-soldier/starzz/internal/model"
	"github.com/toy-soldier/starzz/internal/repository"
)

// In-memory stores implementing the repository interfaces. Reference
// resolution mirrors the SQL layer: a dangling or absent id yields a
// zero summary.

type fakeUserStore struct {
	seq   uint64
	users map[uint64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) (uint64, error) {
	if u.UserID == 0 {
		f.seq++
		u.UserID = f.seq
	} else if u.UserID > f.seq {
		f.seq = u.UserID
	}
	f.users[u.UserID] = *u
	return u.UserID, nil
}

func (f *fakeUserStore) Retrieve(_ context.Context, id uint64) (*model.UserDetail, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	d := u.Detail()
	return &d, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	best := model.User{}
	for _, u := range f.users {
		if u.Username == username && (best.UserID == 0 || u.UserID < best.UserID) {
			best = u
		}
	}
	if best.UserID == 0 {
		return model.User{}, repository.ErrUserNotFound
	}
	return best, nil
}

func (f *fakeUserStore) Update(_ context.Context, id uint64, patch model.UserPatch) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	patch.Apply(&u)
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.UserSummary, error) {
	out := make([]model.UserSummary, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// userRef resolves an attribution pointer against the user store.
func (f *fakeUserStore) userRef(id *uint64) model.UserSummary {
	if id == nil {
		return model.UserSummary{}
	}
	u, ok := f.users[*id]
	if !ok {
		return model.UserSummary{}
	}
	return u.Summary()
}

type fakeGalaxyStore struct {
	seq      uint64
	galaxies map[uint64]model.Galaxy
	users    *fakeUserStore
}

func newFakeGalaxyStore(users *fakeUserStore) *fakeGalaxyStore {
	return &fakeGalaxyStore{galaxies: map[uint64]model.Galaxy{}, users: users}
}

func (f *fakeGalaxyStore) Create(_ context.Context, g *model.Galaxy) (uint64, error) {
	if g.GalaxyID == 0 {
		f.seq++
		g.GalaxyID = f.seq
	} else if g.GalaxyID > f.seq {
		f.seq = g.GalaxyID
	}
	f.galaxies[g.GalaxyID] = *g
	return g.GalaxyID, nil
}

func (f *fakeGalaxyStore) Retrieve(_ context.Context, id uint64) (*model.GalaxyDetail, error) {
	g, ok := f.galaxies[id]
	if !ok {
		return nil, repository.ErrGalaxyNotFound
	}
	d := g.Detail(f.users.userRef(g.AddedBy), f.users.userRef(g.VerifiedBy))
	return &d, nil
}

func (f *fakeGalaxyStore) Update(_ context.Context, id uint64, patch model.GalaxyPatch) error {
	g, ok := f.galaxies[id]
	if !ok {
		return repository.ErrGalaxyNotFound
	}
	patch.Apply(&g)
	f.galaxies[id] = g
	return nil
}

func (f *fakeGalaxyStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.galaxies[id]; !ok {
		return repository.ErrGalaxyNotFound
	}
	delete(f.galaxies, id)
	return nil
}

func (f *fakeGalaxyStore) List(_ context.Context) ([]model.GalaxySummary, error) {
	out := make([]model.GalaxySummary, 0, len(f.galaxies))
	for _, g := range f.galaxies {
		out = append(out, g.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GalaxyID < out[j].GalaxyID })
	return out, nil
}

// galaxyRef resolves a constellation's galaxy reference.
func (f *fakeGalaxyStore) galaxyRef(id uint64) model.GalaxySummary {
	g, ok := f.galaxies[id]
	if !ok {
		return model.GalaxySummary{}
	}
	return g.Summary()
}

type fakeConstellationStore struct {
	seq            uint64
	constellations map[uint64]model.Constellation
	galaxies       *fakeGalaxyStore
	users          *fakeUserStore
}

func newFakeConstellationStore(galaxies *fakeGalaxyStore, users *fakeUserStore) *fakeConstellationStore {
	return &fakeConstellationStore{
		constellations: map[uint64]model.Constellation{},
		galaxies:       galaxies,
		users:          users,
	}
}

func (f *fakeConstellationStore) Create(_ context.Context, c *model.Constellation) (uint64, error) {
	if c.ConstellationID == 0 {
		f.seq++
		c.ConstellationID = f.seq
	} else if c.ConstellationID > f.seq {
		f.seq = c.ConstellationID
	}
	f.constellations[c.ConstellationID] = *c
	return c.ConstellationID, nil
}

func (f *fakeConstellationStore) Retrieve(_ context.Context, id uint64) (*model.ConstellationDetail, error) {
	c, ok := f.constellations[id]
	if !ok {
		return nil, repository.ErrConstellationNotFound
	}
	d := c.Detail(f.galaxies.galaxyRef(c.GalaxyID), f.users.userRef(c.AddedBy), f.users.userRef(c.VerifiedBy))
	return &d, nil
}

func (f *fakeConstellationStore) Update(_ context.Context, id uint64, patch model.ConstellationPatch) error {
	c, ok := f.constellations[id]
	if !ok {
		return repository.ErrConstellationNotFound
	}
	patch.Apply(&c)
	f.constellations[id] = c
	return nil
}

func (f *fakeConstellationStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.constellations[id]; !ok {
		return repository.ErrConstellationNotFound
	}
	delete(f.constellations, id)
	return nil
}

func (f *fakeConstellationStore) List(_ context.Context) ([]model.ConstellationSummary, error) {
	out := make([]model.ConstellationSummary, 0, len(f.constellations))
	for _, c := range f.constellations {
		out = append(out, c.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConstellationID < out[j].ConstellationID })
	return out, nil
}

func (f *fakeConstellationStore) constellationRef(id uint64) model.ConstellationSummary {
	c, ok := f.constellations[id]
	if !ok {
		return model.ConstellationSummary{}
	}
	return c.Summary()
}

type fakeStarStore struct {
	seq            uint64
	stars          map[uint64]model.Star
	constellations *fakeConstellationStore
	users          *fakeUserStore
}

func newFakeStarStore(constellations *fakeConstellationStore, users *fakeUserStore) *fakeStarStore {
	return &fakeStarStore{stars: map[uint64]model.Star{}, constellations: constellations, users: users}
}

func (f *fakeStarStore) Create(_ context.Context, s *model.Star) (uint64, error) {
	if s.StarID == 0 {
		f.seq++
		s.StarID = f.seq
	} else if s.StarID > f.seq {
		f.seq = s.StarID
	}
	f.stars[s.StarID] = *s
	return s.StarID, nil
}

func (f *fakeStarStore) Retrieve(_ context.Context, id uint64) (*model.StarDetail, error) {
	s, ok := f.stars[id]
	if !ok {
		return nil, repository.ErrStarNotFound
	}
	d := s.Detail(f.constellations.constellationRef(s.ConstellationID), f.users.userRef(s.AddedBy), f.users.userRef(s.VerifiedBy))
	return &d, nil
}

func (f *fakeStarStore) Update(_ context.Context, id uint64, patch model.StarPatch) error {
	s, ok := f.stars[id]
	if !ok {
		return repository.ErrStarNotFound
	}
	patch.Apply(&s)
	f.stars[id] = s
	return nil
}

func (f *fakeStarStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.stars[id]; !ok {
		return repository.ErrStarNotFound
	}
	delete(f.stars, id)
	return nil
}

func (f *fakeStarStore) List(_ context.Context) ([]model.StarSummary, error) {
	out := make([]model.StarSummary, 0, len(f.stars))
	for _, s := range f.stars {
		out = append(out, s.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StarID < out[j].StarID })
	return out, nil
}
