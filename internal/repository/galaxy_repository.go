package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/toy-soldier/starzz/internal/model"
)

// GalaxyRepo encapsulates all queries against the `galaxies` table.
type GalaxyRepo struct{ db *sql.DB }

func NewGalaxyRepo(db *sql.DB) *GalaxyRepo { return &GalaxyRepo{db: db} }

// Create inserts a galaxy and returns its id. A nonzero g.GalaxyID is
// honored, otherwise the auto-increment column assigns one.
func (r *GalaxyRepo) Create(ctx context.Context, g *model.Galaxy) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO galaxies
		   (galaxy_id, galaxy_name, galaxy_type, distance_mly, redshift, mass_solar, diameter_ly, added_by, verified_by)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		insertID(g.GalaxyID), g.GalaxyName, g.GalaxyType, g.DistanceMly, g.Redshift,
		g.MassSolar, g.DiameterLy, g.AddedBy, g.VerifiedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if g.GalaxyID == 0 {
		g.GalaxyID = uint64(id)
	}
	return g.GalaxyID, nil
}

// Retrieve returns the full projection with attribution resolved in a
// single query, or ErrGalaxyNotFound.
func (r *GalaxyRepo) Retrieve(ctx context.Context, id uint64) (*model.GalaxyDetail, error) {
	var g model.Galaxy
	var aID, vID sql.NullInt64
	var aFirst, aLast, vFirst, vLast sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT g.galaxy_id, g.galaxy_name, g.galaxy_type, g.distance_mly, g.redshift,
		        g.mass_solar, g.diameter_ly,
		        a.user_id, a.first_name, a.last_name,
		        v.user_id, v.first_name, v.last_name
		 FROM galaxies g
		 LEFT JOIN users a ON a.user_id = g.added_by
		 LEFT JOIN users v ON v.user_id = g.verified_by
		 WHERE g.galaxy_id = ?`, id).
		Scan(&g.GalaxyID, &g.GalaxyName, &g.GalaxyType, &g.DistanceMly, &g.Redshift,
			&g.MassSolar, &g.DiameterLy,
			&aID, &aFirst, &aLast,
			&vID, &vFirst, &vLast)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGalaxyNotFound
	}
	if err != nil {
		return nil, err
	}
	d := g.Detail(userSummary(aID, aFirst, aLast), userSummary(vID, vFirst, vLast))
	return &d, nil
}

// Update applies a partial patch inside a transaction.
func (r *GalaxyRepo) Update(ctx context.Context, id uint64, patch model.GalaxyPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var (
		g        model.Galaxy
		aID, vID sql.NullInt64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT galaxy_id, galaxy_name, galaxy_type, distance_mly, redshift, mass_solar, diameter_ly,
		        added_by, verified_by
		 FROM galaxies WHERE galaxy_id = ? FOR UPDATE`, id).
		Scan(&g.GalaxyID, &g.GalaxyName, &g.GalaxyType, &g.DistanceMly, &g.Redshift,
			&g.MassSolar, &g.DiameterLy, &aID, &vID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGalaxyNotFound
	}
	if err != nil {
		return err
	}
	g.AddedBy, g.VerifiedBy = refID(aID), refID(vID)

	patch.Apply(&g)
	if _, err = tx.ExecContext(ctx,
		`UPDATE galaxies
		 SET galaxy_name=?, galaxy_type=?, distance_mly=?, redshift=?, mass_solar=?, diameter_ly=?,
		     added_by=?, verified_by=?
		 WHERE galaxy_id = ?`,
		g.GalaxyName, g.GalaxyType, g.DistanceMly, g.Redshift, g.MassSolar, g.DiameterLy,
		g.AddedBy, g.VerifiedBy, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the record, or returns ErrGalaxyNotFound.
// Constellations referencing the galaxy keep their galaxy_id.
func (r *GalaxyRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM galaxies WHERE galaxy_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGalaxyNotFound
	}
	return nil
}

// List returns every galaxy's partial projection in store order.
func (r *GalaxyRepo) List(ctx context.Context) ([]model.GalaxySummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT galaxy_id, galaxy_name FROM galaxies ORDER BY galaxy_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.GalaxySummary, 0)
	for rows.Next() {
		var s model.GalaxySummary
		if err := rows.Scan(&s.GalaxyID, &s.GalaxyName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
