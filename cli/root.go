// Package cli drives a hackathons app from the command line.
//
// Commands share a single token, kept in a bolt file between invocations,
// and print what they fetch as JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hackathons"
	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/auth"
	"github.com/xy-planning-network/hackathons/auth/boltstore"
	"github.com/xy-planning-network/hackathons/logger"
	"github.com/xy-planning-network/hackathons/ranger"
)

const appName = "hackathons"

// An app is what every command works with once flags are parsed.
type app struct {
	cfg    ranger.Config
	client *api.Client
	l      logger.Logger
	out    io.Writer

	apiURL string
	dbPath string
}

// NewRootCmd constructs the hackathons command, writing output to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   appName,
		Short: "Browse and manage hackathons",
		Long: `hackathons lists, views, creates, updates and deletes hackathons
held by the backend REST API, logging in with a token kept on disk.

It also serves the web front with "hackathons serve".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "base URL of the backend REST API; overrides API_BASE_URL")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "bolt file the token is kept in; overrides TOKEN_DB_PATH")

	root.AddCommand(
		a.serveCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.listCmd(),
		a.viewCmd(),
		a.createCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.routesCmd(),
	)

	return root
}

// Execute runs the hackathons command with the process's arguments.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// setup reads the Config, applies flag overrides and builds the API client.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := ranger.NewConfig()
	if err != nil {
		return err
	}

	if a.apiURL != "" {
		cfg.APIBaseURL = a.apiURL
	}

	if a.dbPath != "" {
		cfg.TokenDBPath = a.dbPath
	}

	a.cfg = cfg
	a.l = ranger.DefaultAppLogger(cfg, hackathons.CLILogKind, cmd.ErrOrStderr())
	a.client, err = ranger.DefaultAPIClient(cfg, a.l)
	return err
}

// withTokenStore opens the bolt file for the duration of fn.
func (a *app) withTokenStore(fn func(auth.TokenStore) error) error {
	s, err := boltstore.Open(a.cfg.TokenDBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s)
}

// session loads the stored token; none stored is an anonymous session.
func (a *app) session() (auth.Session, error) {
	var sess auth.Session
	err := a.withTokenStore(func(ts auth.TokenStore) error {
		var err error
		sess, err = auth.SessionFrom(ts)
		return err
	})

	return sess, err
}

// print writes v to the command's output as indented JSON.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed printing: %w", err)
	}

	return nil
}
