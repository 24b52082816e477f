package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/toy-soldier/starzz/internal/model"
)

// ConstellationRepo encapsulates all queries against the
// `constellations` table.
type ConstellationRepo struct{ db *sql.DB }

func NewConstellationRepo(db *sql.DB) *ConstellationRepo { return &ConstellationRepo{db: db} }

// Create inserts a constellation and returns its id. A nonzero
// c.ConstellationID is honored, otherwise the auto-increment column
// assigns one.
func (r *ConstellationRepo) Create(ctx context.Context, c *model.Constellation) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO constellations (constellation_id, constellation_name, galaxy_id, added_by, verified_by)
		 VALUES (?,?,?,?,?)`,
		insertID(c.ConstellationID), c.ConstellationName, c.GalaxyID, c.AddedBy, c.VerifiedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if c.ConstellationID == 0 {
		c.ConstellationID = uint64(id)
	}
	return c.ConstellationID, nil
}

// Retrieve returns the full projection with the galaxy and attribution
// resolved in a single query, or ErrConstellationNotFound.
func (r *ConstellationRepo) Retrieve(ctx context.Context, id uint64) (*model.ConstellationDetail, error) {
	var c model.Constellation
	var gID sql.NullInt64
	var gName sql.NullString
	var aID, vID sql.NullInt64
	var aFirst, aLast, vFirst, vLast sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT c.constellation_id, c.constellation_name,
		        g.galaxy_id, g.galaxy_name,
		        a.user_id, a.first_name, a.last_name,
		        v.user_id, v.first_name, v.last_name
		 FROM constellations c
		 LEFT JOIN galaxies g ON g.galaxy_id = c.galaxy_id
		 LEFT JOIN users a ON a.user_id = c.added_by
		 LEFT JOIN users v ON v.user_id = c.verified_by
		 WHERE c.constellation_id = ?`, id).
		Scan(&c.ConstellationID, &c.ConstellationName,
			&gID, &gName,
			&aID, &aFirst, &aLast,
			&vID, &vFirst, &vLast)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConstellationNotFound
	}
	if err != nil {
		return nil, err
	}
	galaxy := model.GalaxySummary{}
	if gID.Valid {
		galaxy = model.GalaxySummary{GalaxyID: uint64(gID.Int64), GalaxyName: gName.String}
	}
	d := c.Detail(galaxy, userSummary(aID, aFirst, aLast), userSummary(vID, vFirst, vLast))
	return &d, nil
}

// Update applies a partial patch inside a transaction.
func (r *ConstellationRepo) Update(ctx context.Context, id uint64, patch model.ConstellationPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var c model.Constellation
	var aID, vID sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT constellation_id, constellation_name, galaxy_id, added_by, verified_by
		 FROM constellations WHERE constellation_id = ? FOR UPDATE`, id).
		Scan(&c.ConstellationID, &c.ConstellationName, &c.GalaxyID, &aID, &vID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrConstellationNotFound
	}
	if err != nil {
		return err
	}
	c.AddedBy, c.VerifiedBy = refID(aID), refID(vID)

	patch.Apply(&c)
	if _, err = tx.ExecContext(ctx,
		`UPDATE constellations
		 SET constellation_name=?, galaxy_id=?, added_by=?, verified_by=?
		 WHERE constellation_id = ?`,
		c.ConstellationName, c.GalaxyID, c.AddedBy, c.VerifiedBy, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the record, or returns ErrConstellationNotFound.
// Stars referencing the constellation keep their constellation_id.
func (r *ConstellationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM constellations WHERE constellation_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrConstellationNotFound
	}
	return nil
}

// List returns every constellation's partial projection in store order.
func (r *ConstellationRepo) List(ctx context.Context) ([]model.ConstellationSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT constellation_id, constellation_name FROM constellations ORDER BY constellation_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ConstellationSummary, 0)
	for rows.Next() {
		var s model.ConstellationSummary
		if err := rows.Scan(&s.ConstellationID, &s.ConstellationName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
