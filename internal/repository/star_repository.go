package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/toy-soldier/starzz/internal/model"
)

// StarRepo encapsulates all queries against the `stars` table.
type StarRepo struct{ db *sql.DB }

func NewStarRepo(db *sql.DB) *StarRepo { return &StarRepo{db: db} }

// Create inserts a star and returns its id. A nonzero s.StarID is
// honored, otherwise the auto-increment column assigns one.
func (r *StarRepo) Create(ctx context.Context, s *model.Star) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stars
		   (star_id, star_name, star_type, constellation_id, right_ascension, declination,
		    apparent_magnitude, spectral_type, added_by, verified_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		insertID(s.StarID), s.StarName, s.StarType, s.ConstellationID, s.RightAscension,
		s.Declination, s.ApparentMagnitude, s.SpectralType, s.AddedBy, s.VerifiedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if s.StarID == 0 {
		s.StarID = uint64(id)
	}
	return s.StarID, nil
}

// Retrieve returns the full projection with the constellation and
// attribution resolved in a single query, or ErrStarNotFound.
func (r *StarRepo) Retrieve(ctx context.Context, id uint64) (*model.StarDetail, error) {
	var s model.Star
	var cID sql.NullInt64
	var cName sql.NullString
	var aID, vID sql.NullInt64
	var aFirst, aLast, vFirst, vLast sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT s.star_id, s.star_name, s.star_type, s.right_ascension, s.declination,
		        s.apparent_magnitude, s.spectral_type,
		        c.constellation_id, c.constellation_name,
		        a.user_id, a.first_name, a.last_name,
		        v.user_id, v.first_name, v.last_name
		 FROM stars s
		 LEFT JOIN constellations c ON c.constellation_id = s.constellation_id
		 LEFT JOIN users a ON a.user_id = s.added_by
		 LEFT JOIN users v ON v.user_id = s.verified_by
		 WHERE s.star_id = ?`, id).
		Scan(&s.StarID, &s.StarName, &s.StarType, &s.RightAscension, &s.Declination,
			&s.ApparentMagnitude, &s.SpectralType,
			&cID, &cName,
			&aID, &aFirst, &aLast,
			&vID, &vFirst, &vLast)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStarNotFound
	}
	if err != nil {
		return nil, err
	}
	constellation := model.ConstellationSummary{}
	if cID.Valid {
		constellation = model.ConstellationSummary{
			ConstellationID:   uint64(cID.Int64),
			ConstellationName: cName.String,
		}
	}
	d := s.Detail(constellation, userSummary(aID, aFirst, aLast), userSummary(vID, vFirst, vLast))
	return &d, nil
}

// Update applies a partial patch inside a transaction.
func (r *StarRepo) Update(ctx context.Context, id uint64, patch model.StarPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var s model.Star
	var aID, vID sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT star_id, star_name, star_type, constellation_id, right_ascension, declination,
		        apparent_magnitude, spectral_type, added_by, verified_by
		 FROM stars WHERE star_id = ? FOR UPDATE`, id).
		Scan(&s.StarID, &s.StarName, &s.StarType, &s.ConstellationID, &s.RightAscension,
			&s.Declination, &s.ApparentMagnitude, &s.SpectralType, &aID, &vID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStarNotFound
	}
	if err != nil {
		return err
	}
	s.AddedBy, s.VerifiedBy = refID(aID), refID(vID)

	patch.Apply(&s)
	if _, err = tx.ExecContext(ctx,
		`UPDATE stars
		 SET star_name=?, star_type=?, constellation_id=?, right_ascension=?, declination=?,
		     apparent_magnitude=?, spectral_type=?, added_by=?, verified_by=?
		 WHERE star_id = ?`,
		s.StarName, s.StarType, s.ConstellationID, s.RightAscension, s.Declination,
		s.ApparentMagnitude, s.SpectralType, s.AddedBy, s.VerifiedBy, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the record, or returns ErrStarNotFound.
func (r *StarRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stars WHERE star_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStarNotFound
	}
	return nil
}

// List returns every star's partial projection in store order.
func (r *StarRepo) List(ctx context.Context) ([]model.StarSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT star_id, star_name FROM stars ORDER BY star_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.StarSummary, 0)
	for rows.Next() {
		var s model.StarSummary
		if err := rows.Scan(&s.StarID, &s.StarName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
