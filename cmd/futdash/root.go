package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/futdash/futdash/internal/config"
	"github.com/futdash/futdash/internal/credential"
	"github.com/futdash/futdash/internal/dispatch"
	"github.com/futdash/futdash/internal/football"
	"github.com/futdash/futdash/internal/notify"
	"github.com/futdash/futdash/internal/session"
)

// errNotLoggedIn gates protected commands, the CLI equivalent of a route
// guard redirecting an unauthenticated user to the login page.
var errNotLoggedIn = errors.New(`not logged in, run "futdash login" first`)

// app holds the wired core shared by all subcommands.
type app struct {
	cfg      *config.Config
	session  *session.Store
	football *football.Client
	notifier notify.Notifier
}

// NewRootCmd creates the root command for the futdash CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "futdash",
		Short: "futdash - Brasileirão dashboard in your terminal",
		Long: `futdash browses Brasileirão Série A teams, squads, match history and
historical statistics from an authenticated backend session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bootstrap(cmd)
		},
	}

	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newRegisterCmd(a))
	cmd.AddCommand(newLogoutCmd(a))
	cmd.AddCommand(newWhoamiCmd(a))
	cmd.AddCommand(newTeamsCmd(a))
	cmd.AddCommand(newTeamCmd(a))
	cmd.AddCommand(newMatchesCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newImportCmd(a))

	return cmd
}

// bootstrap loads configuration, wires the core and restores any existing
// session before a subcommand runs.
func (a *app) bootstrap(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	setupLogger(cfg.LogLevel)

	credPath := cfg.CredentialFile
	if credPath == "" {
		credPath, err = credential.DefaultPath()
		if err != nil {
			return err
		}
	}
	creds := credential.NewStore(credPath, time.Duration(cfg.TokenTTL)*time.Minute)

	a.notifier = notify.NewWriter(cmd.ErrOrStderr())

	api := dispatch.New(cfg.APIBaseURL, creds, a.notifier,
		dispatch.WithTimeout(time.Duration(cfg.HTTPTimeout)*time.Second),
	)

	a.session = session.NewStore(creds, api, a.notifier, slog.Default())
	a.football = football.NewClient(api)

	a.session.Initialize(cmd.Context())
	return nil
}

// requireAuth fails a protected command when no session is established.
func (a *app) requireAuth() error {
	if !a.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}
