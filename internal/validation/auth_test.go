package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futdash/futdash/internal/validation"
)

func fieldsOf(errs []validation.FieldError) []string {
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

// --- Login Tests ---

func TestValidateLogin_Valid(t *testing.T) {
	errs := validation.ValidateLogin(validation.LoginRequest{
		Username: "alice",
		Password: "secret1",
	})
	assert.Empty(t, errs)
}

func TestValidateLogin_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     validation.LoginRequest
		field   string
		message string
	}{
		{
			name:    "missing username",
			req:     validation.LoginRequest{Password: "secret1"},
			field:   "username",
			message: "username is required",
		},
		{
			name:    "short username",
			req:     validation.LoginRequest{Username: "ab", Password: "secret1"},
			field:   "username",
			message: "username must be at least 3 characters",
		},
		{
			name:    "missing password",
			req:     validation.LoginRequest{Username: "alice"},
			field:   "password",
			message: "password is required",
		},
		{
			name:    "short password",
			req:     validation.LoginRequest{Username: "alice", Password: "abc"},
			field:   "password",
			message: "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateLogin(tt.req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

// --- Register Tests ---

func validRegister() validation.RegisterRequest {
	return validation.RegisterRequest{
		Username:        "bob_42",
		Email:           "bob@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FavoriteTeam:    "Flamengo",
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidateRegister(validRegister()))
}

func TestValidateRegister_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*validation.RegisterRequest)
		field  string
	}{
		{"username with spaces", func(r *validation.RegisterRequest) { r.Username = "bob smith" }, "username"},
		{"username too long", func(r *validation.RegisterRequest) { r.Username = "abcdefghijklmnopqrstu" }, "username"},
		{"bad email", func(r *validation.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"missing email", func(r *validation.RegisterRequest) { r.Email = "" }, "email"},
		{"mismatched confirmation", func(r *validation.RegisterRequest) { r.ConfirmPassword = "different" }, "confirmPassword"},
		{"missing favorite team", func(r *validation.RegisterRequest) { r.FavoriteTeam = "" }, "favoriteTeam"},
		{"favorite team too short", func(r *validation.RegisterRequest) { r.FavoriteTeam = "ab" }, "favoriteTeam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)
			errs := validation.ValidateRegister(req)
			require.NotEmpty(t, errs)
			assert.Contains(t, fieldsOf(errs), tt.field)
		})
	}
}

func TestValidateRegister_CollectsAllErrors(t *testing.T) {
	errs := validation.ValidateRegister(validation.RegisterRequest{})
	assert.ElementsMatch(t,
		[]string{"username", "email", "password", "confirmPassword", "favoriteTeam"},
		fieldsOf(errs))
}
