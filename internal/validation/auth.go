// Package validation checks auth form input before it reaches the network.
package validation

import (
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginRequest mirrors the fields needed for login validation.
type LoginRequest struct {
	Username string
	Password string
}

// ValidateLogin validates the fields of a login request.
// Returns a slice of field errors; empty slice means valid.
func ValidateLogin(req LoginRequest) []FieldError {
	var errs []FieldError

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	} else if len(username) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "username must be at least 3 characters"})
	}

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	return errs
}

// RegisterRequest mirrors the fields needed for registration validation.
type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FavoriteTeam    string
}

// ValidateRegister validates the fields of a registration request.
func ValidateRegister(req RegisterRequest) []FieldError {
	var errs []FieldError

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	case len(username) < 3:
		errs = append(errs, FieldError{Field: "username", Message: "username must be at least 3 characters"})
	case len(username) > 20:
		errs = append(errs, FieldError{Field: "username", Message: "username must be at most 20 characters"})
	case !usernameRegex.MatchString(username):
		errs = append(errs, FieldError{Field: "username", Message: "username may only contain letters, numbers and underscore"})
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "email is not valid"})
	}

	switch {
	case req.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	case len(req.Password) < 6:
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	case len(req.Password) > 100:
		errs = append(errs, FieldError{Field: "password", Message: "password is too long"})
	}

	if req.ConfirmPassword == "" {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "password confirmation is required"})
	} else if req.ConfirmPassword != req.Password {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}

	team := strings.TrimSpace(req.FavoriteTeam)
	switch {
	case team == "":
		errs = append(errs, FieldError{Field: "favoriteTeam", Message: "favorite team is required"})
	case len(team) < 3:
		errs = append(errs, FieldError{Field: "favoriteTeam", Message: "favorite team must be at least 3 characters"})
	case len(team) > 20:
		errs = append(errs, FieldError{Field: "favoriteTeam", Message: "favorite team must be at most 20 characters"})
	}

	return errs
}
