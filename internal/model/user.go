package model

// User mirrors the `users` table. The Password column always holds a
// bcrypt hash; plaintext never reaches the repository layer.
//
// Usernames are not unique by schema; login resolves duplicates by
// taking the lowest user_id.
type User struct {
	UserID      uint64 // users.user_id
	Username    string // users.username
	Email       string // users.email
	Password    string // users.password (bcrypt hash)
	FirstName   string // users.first_name
	LastName    string // users.last_name
	DateOfBirth string // users.date_of_birth
}

// UserSummary is the partial projection of a user: identity plus a
// display label. Lists return summaries and referencing entities embed
// them. Every field is omitempty so the zero value marshals as {},
// which is how an absent or dangling reference is rendered.
type UserSummary struct {
	UserID   uint64 `json:"user_id,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// UserDetail is the full projection. The password hash is never
// projected, and the name fields only appear combined in full_name.
type UserDetail struct {
	UserSummary
	Username    string `json:"username"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
}

// Summary builds the partial projection.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:   u.UserID,
		FullName: u.FirstName + " " + u.LastName,
	}
}

// Detail builds the full projection.
func (u User) Detail() UserDetail {
	return UserDetail{
		UserSummary: u.Summary(),
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
	}
}

// UserPatch lists the fields a PUT may replace. Nil leaves the stored
// value untouched. The record id comes from the URL path and is not
// patchable; an id in the body is ignored. Password, when present,
// must already be hashed by the caller.
type UserPatch struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
}

// Apply copies the set fields onto an existing record.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
}
