// Package cli is the operator's terminal front end. Each command opens the
// configured token store, restores the session from it and drives the same
// session manager and screen controllers the HTTP console uses.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/NazifToure01/AlloColis-admin/internal/console/app"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
	"github.com/spf13/cobra"
)

// ErrNotSignedIn is returned by commands that need a session when none
// could be restored.
var ErrNotSignedIn = errors.New("not signed in, run `allocolis-console login` first")

// StoreOpener opens the token store for one command.
type StoreOpener func(ctx context.Context, cfg app.Config, logger *slog.Logger) (store.Store, error)

// CLI holds what every command shares.
type CLI struct {
	Out io.Writer
	Err io.Writer
	In  *bufio.Reader

	// OpenStore defaults to app.OpenStore.
	OpenStore StoreOpener

	cfg    app.Config
	logger *slog.Logger

	// flags
	apiURL   string
	driver   string
	database string
	logLevel string
}

// New returns a CLI wired to the process's standard streams.
func New() *CLI {
	return &CLI{
		Out:       os.Stdout,
		Err:       os.Stderr,
		In:        bufio.NewReader(os.Stdin),
		OpenStore: app.OpenStore,
	}
}

// Command builds the command tree.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "allocolis-console",
		Short: "AlloColis back-office console",
		Long: `Administer the AlloColis parcel-sharing platform from a terminal.

The session is kept in the configured token store between runs, so sign in
once with "login" and the other commands reuse it until it expires.

Run "serve" to expose the same console over HTTP for the browser UI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.apiURL, "api-url", "", "backend base URL (overrides CONSOLE_API_URL)")
	flags.StringVar(&c.driver, "store", "", "token store driver: sqlite, redis or memory")
	flags.StringVar(&c.database, "database", "", "sqlite token store file")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.serveCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.subscribeCommand(),
		c.usersCommand(),
		c.announcesCommand(),
		c.verificationsCommand(),
		c.reportsCommand(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = c.apiURL
	}
	if flags.Changed("store") {
		cfg.StoreDriver = c.driver
	}
	if flags.Changed("database") {
		cfg.DatabaseFile = c.database
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	// The server keeps its configured format; everything else writes tables
	// to stdout and text logs to stderr.
	if cmd.Name() == "serve" {
		return nil
	}
	c.logger = slogx.New(slogx.Config{
		Service: "allocolis-cli",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  c.Err,
	})
	return nil
}

// withSession opens the store, restores the session and runs fn. The store
// is closed afterwards.
func (c *CLI) withSession(ctx context.Context, fn func(*session.Manager) error) error {
	st, err := c.OpenStore(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer st.Close()

	mgr := session.New(app.NewClient(c.cfg), st, session.NavigatorFunc(func(to session.Route) {
		c.logger.Debug("navigate", "route", string(to))
	}), c.logger)

	if err := mgr.Init(ctx); err != nil {
		c.logger.Warn("could not restore session", "error", err)
	}
	return fn(mgr)
}

// withAdmin is withSession for commands that need a signed-in admin.
func (c *CLI) withAdmin(ctx context.Context, fn func(*session.Manager) error) error {
	return c.withSession(ctx, func(mgr *session.Manager) error {
		snap := mgr.Snapshot()
		if !snap.Authenticated() {
			return ErrNotSignedIn
		}
		if !snap.Identity.IsAdmin() {
			return fmt.Errorf("%w: signed in as %s", session.ErrAccessDenied, snap.Identity.Role)
		}
		return fn(mgr)
	})
}
