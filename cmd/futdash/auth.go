package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/futdash/futdash/internal/validation"
)

// newLoginCmd creates the login subcommand.
func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store a session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fieldErrors := validation.ValidateLogin(validation.LoginRequest{
				Username: username,
				Password: password,
			})
			if err := reportFieldErrors(cmd, fieldErrors); err != nil {
				return err
			}

			if err := a.session.Login(cmd.Context(), username, password); err != nil {
				return err
			}

			if id := a.session.Identity(); id != nil {
				cmd.Printf("logged in as %s\n", id.Username)
			} else {
				cmd.Println("logged in, but the profile could not be loaded; try again")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// newRegisterCmd creates the register subcommand. A successful registration
// signs the new account in immediately.
func newRegisterCmd(a *app) *cobra.Command {
	var username, email, password, confirm, favoriteTeam string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if confirm == "" {
				confirm = password
			}

			fieldErrors := validation.ValidateRegister(validation.RegisterRequest{
				Username:        username,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
				FavoriteTeam:    favoriteTeam,
			})
			if err := reportFieldErrors(cmd, fieldErrors); err != nil {
				return err
			}

			if err := a.session.Register(cmd.Context(), username, email, password, favoriteTeam); err != nil {
				return err
			}

			if id := a.session.Identity(); id != nil {
				cmd.Printf("welcome, %s\n", id.Username)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation (defaults to --password)")
	cmd.Flags().StringVarP(&favoriteTeam, "favorite-team", "t", "", "favorite team name")

	return cmd
}

// newLogoutCmd creates the logout subcommand.
func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		RunE: func(_ *cobra.Command, _ []string) error {
			a.session.Logout()
			return nil
		},
	}
}

// newWhoamiCmd creates the whoami subcommand.
func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			id := a.session.Identity()
			cmd.Printf("username:      %s\n", id.Username)
			cmd.Printf("email:         %s\n", id.Email)
			cmd.Printf("favorite team: %s\n", id.FavoriteTeam)
			return nil
		},
	}
}

// reportFieldErrors prints each field error inline and returns a summary
// error when validation failed.
func reportFieldErrors(cmd *cobra.Command, fieldErrors []validation.FieldError) error {
	if len(fieldErrors) == 0 {
		return nil
	}
	for _, fe := range fieldErrors {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Field, fe.Message)
	}
	return errors.New("invalid input")
}
