package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/toy-soldier/starzz/internal/model"
)

// UserRepo encapsulates all queries against the `users` table.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a user and returns its id. A nonzero u.UserID is
// honored, otherwise the auto-increment column assigns one. The
// password field must already be hashed.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, username, email, password, first_name, last_name, date_of_birth)
		 VALUES (?,?,?,?,?,?,?)`,
		insertID(u.UserID), u.Username, u.Email, u.Password, u.FirstName, u.LastName, u.DateOfBirth)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if u.UserID == 0 {
		u.UserID = uint64(id)
	}
	return u.UserID, nil
}

// Retrieve returns the full projection, or ErrUserNotFound.
func (r *UserRepo) Retrieve(ctx context.Context, id uint64) (*model.UserDetail, error) {
	u, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := u.Detail()
	return &d, nil
}

// GetByUsername fetches the raw record for login. Usernames are not
// unique; the lowest user_id wins.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password, first_name, last_name, date_of_birth
		 FROM users WHERE username = ? ORDER BY user_id LIMIT 1`, username).
		Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.DateOfBirth)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// Update applies a partial patch inside a transaction. Fields absent
// from the patch keep their stored values.
func (r *UserRepo) Update(ctx context.Context, id uint64, patch model.UserPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var u model.User
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, username, email, password, first_name, last_name, date_of_birth
		 FROM users WHERE user_id = ? FOR UPDATE`, id).
		Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.DateOfBirth)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	patch.Apply(&u)
	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET username=?, email=?, password=?, first_name=?, last_name=?, date_of_birth=?
		 WHERE user_id = ?`,
		u.Username, u.Email, u.Password, u.FirstName, u.LastName, u.DateOfBirth, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the record, or returns ErrUserNotFound. Rows in other
// catalogs that reference the user are left untouched.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// List returns every user's partial projection in store order.
func (r *UserRepo) List(ctx context.Context) ([]model.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, first_name, last_name FROM users ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.UserSummary, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.FirstName, &u.LastName); err != nil {
			return nil, err
		}
		out = append(out, u.Summary())
	}
	return out, rows.Err()
}

func (r *UserRepo) getByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password, first_name, last_name, date_of_birth
		 FROM users WHERE user_id = ?`, id).
		Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.DateOfBirth)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}
