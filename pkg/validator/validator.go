// Package validator implements the request boundary's field checks.
// Catalogs never see a payload that failed validation; handlers render
// the returned map as a 400 with per-field messages.
package validator

import (
	"net/mail"
	"strings"
)

// blank is the message attached to a missing required field.
const blank = "This field cannot be blank."

// ValidationErrors maps a field name to a human-readable message.
type ValidationErrors map[string]string

// HasErrors reports whether any field failed validation.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Add records a validation failure for a field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// ValidateUserCreate checks the required fields of a user
// registration payload.
func ValidateUserCreate(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)
	if strings.TrimSpace(username) == "" {
		errs.Add("username", blank)
	}
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", blank)
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address.")
	}
	if password == "" {
		errs.Add("password", blank)
	}
	return errs
}

// ValidateLogin checks the login payload.
func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)
	if strings.TrimSpace(username) == "" {
		errs.Add("username", blank)
	}
	if password == "" {
		errs.Add("password", blank)
	}
	return errs
}

// ValidateGalaxyCreate checks the required fields of a galaxy
// registration payload.
func ValidateGalaxyCreate(name string) ValidationErrors {
	errs := make(ValidationErrors)
	if strings.TrimSpace(name) == "" {
		errs.Add("galaxy_name", blank)
	}
	return errs
}

// ValidateConstellationCreate checks the required fields of a
// constellation registration payload. Attribution via added_by is
// mandatory here, unlike the other catalogs.
func ValidateConstellationCreate(name string, galaxyID, addedBy uint64) ValidationErrors {
	errs := make(ValidationErrors)
	if strings.TrimSpace(name) == "" {
		errs.Add("constellation_name", blank)
	}
	if galaxyID == 0 {
		errs.Add("galaxy_id", blank)
	}
	if addedBy == 0 {
		errs.Add("added_by", blank)
	}
	return errs
}

// ValidateStarCreate checks the required fields of a star registration
// payload.
func ValidateStarCreate(name string, constellationID uint64) ValidationErrors {
	errs := make(ValidationErrors)
	if strings.TrimSpace(name) == "" {
		errs.Add("star_name", blank)
	}
	if constellationID == 0 {
		errs.Add("constellation_id", blank)
	}
	return errs
}
