package repository

import "errors"

// Not-found sentinels, one per catalog. Absence is a normal outcome:
// handlers translate these into 404 on retrieve and 400 on
// update/delete, they are never logged as failures.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrGalaxyNotFound        = errors.New("galaxy not found")
	ErrConstellationNotFound = errors.New("constellation not found")
	ErrStarNotFound          = errors.New("star not found")
)
