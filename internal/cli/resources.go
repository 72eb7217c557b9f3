package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/spf13/cobra"
)

// screenDef describes how one resource is fetched and drawn.
type screenDef[T any] struct {
	name    string
	title   string
	source  func(*apisdk.Authorized) resource.Source[T]
	headers []string
	cells   func(T) []string
}

func listCommand[T any](c *CLI, def screenDef[T]) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + def.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				ctx := cmd.Context()
				s := resource.NewListScreen(def.source(mgr.API()), nil, c.logger)

				if err := s.Load(ctx); err != nil {
					return err
				}
				if page != 1 {
					if err := s.GoTo(ctx, page); err != nil {
						return err
					}
				}

				renderList(c, def, s.View())
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	return cmd
}

func renderList[T any](c *CLI, def screenDef[T], v resource.ListView[T]) {
	t := &table{title: def.title, headers: def.headers}
	for _, item := range v.Items {
		t.add(def.cells(item)...)
	}
	if len(v.Items) == 0 {
		fmt.Fprintln(c.Out, mutedStyle.Render("Nothing to show"))
	} else {
		t.render(c.Out)
	}
	pageFooter(c.Out, v)
}

func showCommand[T any](c *CLI, def screenDef[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one of " + def.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				s := resource.NewDetailScreen(def.source(mgr.API()), c.logger)
				if err := s.Load(cmd.Context(), args[0]); err != nil {
					return err
				}
				rec, err := s.Record()
				if err != nil {
					return err
				}
				return printRecord(c, rec)
			})
		},
	}
}

func printRecord(c *CLI, rec any) error {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Out, string(out))
	return nil
}

func setCommand[T any](c *CLI, def screenDef[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID FIELD=VALUE...",
		Short: "Edit fields of one of " + def.name,
		Long: `Loads the record, applies each FIELD=VALUE in order and submits the result.
FIELD is the backend's JSON name. Numeric fields only take numbers.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				ctx := cmd.Context()
				s := resource.NewDetailScreen(def.source(mgr.API()), c.logger)
				if err := s.Load(ctx, args[0]); err != nil {
					return err
				}
				if err := s.StartEdit(); err != nil {
					return err
				}

				for _, pair := range args[1:] {
					name, value, ok := strings.Cut(pair, "=")
					if !ok {
						return fmt.Errorf("%w: expected FIELD=VALUE, got %q", resource.ErrInvalidValue, pair)
					}
					if err := s.SetField(name, value); err != nil {
						return err
					}
				}

				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintf(c.Out, "Saved %s\n", args[0])
				return nil
			})
		},
	}
}

func deleteCommand[T any](c *CLI, def screenDef[T]) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of " + def.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				ctx := cmd.Context()
				s := resource.NewListScreen(def.source(mgr.API()), c.confirmer(yes), c.logger)

				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(c.Out, "Deleted %s\n", args[0])
				renderList(c, def, s.View())
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// ============================================================================
// Resources
// ============================================================================

var usersDef = screenDef[apisdk.User]{
	name:    "users",
	title:   "Users",
	source:  resource.Users,
	headers: []string{"ID", "NAME", "EMAIL", "PHONE", "ROLE"},
	cells: func(u apisdk.User) []string {
		return []string{u.Key(), u.FullName, u.Email, u.Phone, badge(resource.RoleTone(u.Role), u.Role)}
	},
}

var announcesDef = screenDef[apisdk.Announce]{
	name:    "announces",
	title:   "Announces",
	source:  resource.Announces,
	headers: []string{"ID", "FROM", "TO", "DEPARTURE", "PRICE", "STATUS"},
	cells: func(a apisdk.Announce) []string {
		return []string{
			a.ID,
			route(a.DepartureCity, a.DepartureCountry),
			route(a.ArrivalCity, a.ArrivalCountry),
			a.DepartureDate,
			strconv.FormatFloat(a.Price, 'f', -1, 64),
			badge(resource.AnnounceTone(a.Status), resource.AnnounceLabel(a.Status)),
		}
	},
}

var verificationsDef = screenDef[apisdk.Verification]{
	name:    "verifications",
	title:   "Identity verifications",
	source:  resource.Verifications,
	headers: []string{"ID", "USER", "EMAIL", "DOCUMENT", "SUBMITTED", "STATUS"},
	cells: func(v apisdk.Verification) []string {
		return []string{
			v.ID,
			v.User.FullName,
			v.User.Email,
			v.DocumentType,
			v.CreatedAt,
			badge(resource.VerificationTone(v.Status), resource.VerificationLabel(v.Status)),
		}
	},
}

var reportsDef = screenDef[apisdk.ReportSummary]{
	name:    "reports",
	title:   "Reported announces",
	source:  resource.Reports,
	headers: []string{"ANNOUNCE", "TITLE", "ROUTE", "REPORTS", "LAST REASON", "SEVERITY"},
	cells: func(r apisdk.ReportSummary) []string {
		sev := resource.ReportSeverity(r.Count)
		return []string{
			r.Announce.ID,
			r.Announce.Title,
			r.Announce.DepartureCountry + " → " + r.Announce.ArrivalCountry,
			strconv.Itoa(r.Count),
			r.LastReport.Reason,
			badge(sev.Tone(), string(sev)),
		}
	},
}

func route(city, country string) string {
	if city == "" {
		return country
	}
	return city + ", " + country
}

func (c *CLI) usersCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage user accounts"}
	cmd.AddCommand(
		listCommand(c, usersDef),
		showCommand(c, usersDef),
		setCommand(c, usersDef),
		deleteCommand(c, usersDef),
	)
	return cmd
}

func (c *CLI) announcesCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "announces", Short: "Manage travel announces"}
	cmd.AddCommand(
		listCommand(c, announcesDef),
		showCommand(c, announcesDef),
		setCommand(c, announcesDef),
		deleteCommand(c, announcesDef),
	)
	return cmd
}

func (c *CLI) reportsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "reports", Short: "Review reported announces"}
	cmd.AddCommand(listCommand(c, reportsDef))
	return cmd
}

func (c *CLI) verificationsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "verifications", Short: "Review identity documents"}
	cmd.AddCommand(
		listCommand(c, verificationsDef),
		c.reviewShowCommand(),
		c.reviewCommand(apisdk.VerificationApproved),
		c.reviewCommand(apisdk.VerificationRejected),
	)
	return cmd
}

func (c *CLI) reviewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a verification and its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				api := mgr.API()
				s := resource.NewReviewScreen(resource.Verifications(api), api, nil, c.logger)
				if err := s.Load(cmd.Context(), args[0]); err != nil {
					return err
				}
				v, err := s.Record()
				if err != nil {
					return err
				}

				t := &table{headers: []string{"FIELD", "VALUE"}}
				t.add("user", v.User.FullName+" <"+v.User.Email+">")
				t.add("phone", v.User.Phone)
				t.add("document", v.DocumentType)
				for _, f := range [][2]string{
					{"passport", v.Files.Passport},
					{"id front", v.Files.IDFront},
					{"id back", v.Files.IDBack},
					{"video", v.Files.Video},
				} {
					if f[1] != "" {
						t.add(f[0], f[1])
					}
				}
				t.add("submitted", v.CreatedAt)
				t.add("status", badge(resource.VerificationTone(v.Status), resource.VerificationLabel(v.Status)))
				if s.Comment() != "" {
					t.add("comment", s.Comment())
				}
				t.render(c.Out)

				if s.CanReview() {
					fmt.Fprintln(c.Out, mutedStyle.Render("Awaiting review: approve or reject "+v.ID))
				}
				return nil
			})
		},
	}
}

func (c *CLI) reviewCommand(status string) *cobra.Command {
	var comment string

	use, short := "approve ID", "Approve a verification"
	if status == apisdk.VerificationRejected {
		use, short = "reject ID", "Reject a verification (a comment is required)"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withAdmin(cmd.Context(), func(mgr *session.Manager) error {
				ctx := cmd.Context()
				api := mgr.API()
				s := resource.NewReviewScreen(resource.Verifications(api), api, nil, c.logger)
				if err := s.Load(ctx, args[0]); err != nil {
					return err
				}
				if cmd.Flags().Changed("comment") {
					s.SetComment(comment)
				}

				var err error
				if status == apisdk.VerificationApproved {
					err = s.Approve(ctx)
				} else {
					err = s.Reject(ctx)
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(c.Out, "Verification %s %s\n", args[0],
					badge(resource.VerificationTone(status), resource.VerificationLabel(status)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "m", "", "comment shown to the user")
	return cmd
}
