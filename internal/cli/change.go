package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natanaeljr/gerlib/gerrit"
	"github.com/natanaeljr/gerlib/internal/store"
	"github.com/natanaeljr/gerlib/models"
)

func newChangeCmd(a *app) *cobra.Command {
	var remoteName string

	cmd := &cobra.Command{
		Use:   "change",
		Short: "Inspect changes on a remote.",
	}
	cmd.PersistentFlags().StringVarP(&remoteName, "remote", "r", "", "remote to query (defaults to the only registered remote)")

	cmd.AddCommand(newChangeQueryCmd(a, &remoteName))
	cmd.AddCommand(newChangeShowCmd(a, &remoteName))
	cmd.AddCommand(newChangeTopicCmd(a, &remoteName))

	return cmd
}

// withClient resolves the remote and runs fn with a client for it.
func (a *app) withClient(ctx context.Context, remoteName string, fn func(*gerrit.Client) error) error {
	var remote models.Remote
	err := a.withRepository(ctx, func(repo store.RemoteRepository) error {
		var err error
		remote, err = selectRemote(ctx, repo, remoteName)
		return err
	})
	if err != nil {
		return err
	}

	client, err := a.newClient(remote)
	if err != nil {
		return err
	}
	return fn(client)
}

func newChangeQueryCmd(a *app, remoteName *string) *cobra.Command {
	var (
		limit   int
		options []string
	)

	cmd := &cobra.Command{
		Use:   "query <query>...",
		Short: "Search changes, e.g. 'ger change query status:open owner:self'.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.QueryParams{
				Search: models.SearchQueries{models.RawQuery(strings.Join(args, " "))},
			}
			if limit > 0 {
				params.Limit = &limit
			}
			for _, o := range options {
				opt, err := models.ParseAdditionalOpt(o)
				if err != nil {
					return err
				}
				params.Options = append(params.Options, opt)
			}

			ctx := cmd.Context()
			return a.withClient(ctx, *remoteName, func(c *gerrit.Client) error {
				results, err := c.QueryChanges(ctx, params)
				if err != nil {
					return err
				}
				for _, changes := range results {
					for _, change := range changes {
						fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", change.Number, change.Status, change.Subject)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of changes")
	cmd.Flags().StringSliceVarP(&options, "option", "o", nil, "additional fields, e.g. current_revision")

	return cmd
}

func newChangeShowCmd(a *app, remoteName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <change>",
		Short: "Show a change summary.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(ctx, *remoteName, func(c *gerrit.Client) error {
				change, err := c.GetChange(ctx, args[0], models.OptDetailedAccounts)
				if err != nil {
					return err
				}
				printChange(cmd.OutOrStdout(), change)
				return nil
			})
		},
	}
}

func newChangeTopicCmd(a *app, remoteName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "topic <change>",
		Short: "Print the topic of a change.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withClient(ctx, *remoteName, func(c *gerrit.Client) error {
				topic, err := c.GetTopic(ctx, args[0])
				if err != nil {
					return err
				}
				if topic != "" {
					fmt.Fprintln(cmd.OutOrStdout(), topic)
				}
				return nil
			})
		},
	}
}

func printChange(out io.Writer, c *models.ChangeInfo) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("change %d (%s)", c.Number, c.Status)))

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(out, "  %s%s\n", labelStyle.Render(label+":"), value)
	}

	field("project", c.Project)
	field("branch", c.Branch)
	field("subject", c.Subject)
	field("owner", formatAccount(c.Owner))
	field("topic", c.Topic)
	field("change-id", c.ChangeID)
	if !c.Created.IsZero() {
		field("created", c.Created.String())
	}
	if !c.Updated.IsZero() {
		field("updated", c.Updated.String())
	}
	field("size", fmt.Sprintf("+%d -%d", c.Insertions, c.Deletions))
}

func formatAccount(acc models.AccountInfo) string {
	name := acc.Name
	if name == "" {
		name = acc.Username
	}
	if name == "" && acc.AccountID != 0 {
		name = strconv.Itoa(acc.AccountID)
	}
	if acc.Email != "" {
		return fmt.Sprintf("%s <%s>", name, acc.Email)
	}
	return name
}
