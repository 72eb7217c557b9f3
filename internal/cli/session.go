package cli

import (
	"fmt"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/internal/console/app"
	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/spf13/cobra"
)

func (c *CLI) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the console HTTP API for the browser UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New(cmd.Context(), c.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func (c *CLI) loginCommand() *cobra.Command {
	var (
		email   string
		anyRole bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		Long: `Signs in through the backend's admin login. Identities without the admin
role are refused and nothing is stored.

With --any-role the general login is used instead, which accepts every role.
Such a session can run whoami but not the back-office commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = c.prompt("Email: "); err != nil {
					return err
				}
			}
			password, err := c.password()
			if err != nil {
				return err
			}

			return c.withSession(cmd.Context(), func(mgr *session.Manager) error {
				if anyRole {
					err = mgr.SignIn(cmd.Context(), email, password)
				} else {
					err = mgr.AdminSignIn(cmd.Context(), email, password)
				}
				if err != nil {
					return err
				}

				who := mgr.Snapshot().Identity
				fmt.Fprintf(c.Out, "Signed in as %s %s\n", who.FullName, badge(resource.RoleTone(who.Role), who.Role))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when empty)")
	cmd.Flags().BoolVar(&anyRole, "any-role", false, "use the general login and accept any role")
	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd.Context(), func(mgr *session.Manager) error {
				if err := mgr.SignOut(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(c.Out, "Signed out")
				return nil
			})
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd.Context(), func(mgr *session.Manager) error {
				snap := mgr.Snapshot()
				if !snap.Authenticated() {
					return ErrNotSignedIn
				}

				who := snap.Identity
				t := &table{headers: []string{"FIELD", "VALUE"}}
				t.add("id", who.Key())
				t.add("name", who.FullName)
				t.add("email", who.Email)
				t.add("phone", who.Phone)
				t.add("role", badge(resource.RoleTone(who.Role), who.Role))
				if who.IdentityStatus != "" {
					t.add("identity", badge(resource.VerificationTone(who.IdentityStatus), resource.VerificationLabel(who.IdentityStatus)))
				}
				t.render(c.Out)
				return nil
			})
		},
	}
}

func (c *CLI) subscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe EMAIL",
		Short: "Add an email to the launch waitlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if err := app.NewClient(c.cfg).SubscribeNewsletter(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintf(c.Out, "%s added to the waitlist\n", email)
			return nil
		},
	}
}
