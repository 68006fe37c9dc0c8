package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/internal/store"
	"github.com/natanaeljr/gerlib/internal/validators"
	"github.com/natanaeljr/gerlib/models"
)

// askPassword is the value of --password when the flag is given without
// one.
const askPassword = "\x00ask"

// checkConcurrency bounds the number of servers queried at once by
// "remote check".
const checkConcurrency = 4

func newRemoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage gerrit remote servers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withRepository(ctx, func(repo store.RemoteRepository) error {
				return showTable(ctx, cmd.OutOrStdout(), repo, a.verbose)
			})
		},
	}

	cmd.AddCommand(newRemoteAddCmd(a))
	cmd.AddCommand(newRemoteShowCmd(a))
	cmd.AddCommand(newRemoteRemoveCmd(a))
	cmd.AddCommand(newRemoteCheckCmd(a))

	return cmd
}

func newRemoteAddCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "add <name> <url> [port]",
		Short: "Add a new remote.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			remote := models.Remote{
				Name:     args[0],
				URL:      args[1],
				Username: username,
			}
			if len(args) == 3 {
				port, err := parsePort(args[2])
				if err != nil {
					return err
				}
				remote.Port = port
			}

			if err := a.validator.Validate(ctx, remote); err != nil {
				return err
			}

			return a.withRepository(ctx, func(repo store.RemoteRepository) error {
				_, err := repo.GetRemote(ctx, remote.Name)
				switch {
				case err == nil:
					return newMessageError(store.ErrRemoteExists, "remote '%s' already exists.", remote.Name)
				case !errors.Is(err, store.ErrRemoteNotFound):
					return err
				}

				if cmd.Flags().Changed("password") {
					if password == askPassword {
						password, err = a.prompter.PromptPassword(ctx, fmt.Sprintf("HTTP password for '%s':", remote.Name))
						if err != nil {
							return err
						}
					}
					remote.Password = password
				}

				err = repo.AddRemote(ctx, remote)
				if errors.Is(err, store.ErrRemoteExists) {
					return newMessageError(err, "remote '%s' already exists.", remote.Name)
				}
				if err != nil {
					return err
				}

				logger.FromContext(ctx).Info().
					Str("func", "remote.add").
					Str("remote", remote.Name).
					Msg("remote added")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username for login")
	cmd.Flags().StringVarP(&password, "password", "p", "",
		"HTTP password, generated in the gerrit user settings.\n"+
			"Give the flag without a value to be prompted for it (recommended).\n"+
			"The password is stored in plain text in the registry.")
	cmd.Flags().Lookup("password").NoOptDefVal = askPassword

	return cmd
}

func newRemoteShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [remote...]",
		Short: "Show information about remote.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return a.withRepository(ctx, func(repo store.RemoteRepository) error {
				if len(args) == 0 {
					return showTable(ctx, cmd.OutOrStdout(), repo, a.verbose)
				}
				return showRemotes(ctx, cmd.OutOrStdout(), repo, args)
			})
		},
	}
}

func newRemoteRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <remote>...",
		Aliases: []string{"rm"},
		Short:   "Remove a remote from config.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return a.withRepository(ctx, func(repo store.RemoteRepository) error {
				for _, name := range args {
					err := repo.RemoveRemote(ctx, name)
					switch {
					case errors.Is(err, store.ErrRemoteNotFound):
						fmt.Fprintf(out, "fatal: no such remote: %s\n", name)
					case err != nil:
						return err
					default:
						fmt.Fprintf(out, "removed: %s\n", name)
					}
				}
				return nil
			})
		},
	}
}

func newRemoteCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [remote...]",
		Short: "Query the server version of remotes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var remotes []models.Remote
			err := a.withRepository(ctx, func(repo store.RemoteRepository) error {
				if len(args) == 0 {
					all, err := repo.ListRemotes(ctx)
					remotes = all
					return err
				}
				for _, name := range args {
					remote, err := repo.GetRemote(ctx, name)
					if err != nil {
						return noSuchRemote(err, name)
					}
					remotes = append(remotes, remote)
				}
				return nil
			})
			if err != nil {
				return err
			}

			return a.checkRemotes(ctx, cmd.OutOrStdout(), remotes)
		},
	}
}

// checkRemotes queries every remote concurrently and prints one line per
// remote in input order.
func (a *app) checkRemotes(ctx context.Context, out io.Writer, remotes []models.Remote) error {
	lines := make([]string, len(remotes))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)

	for i, remote := range remotes {
		g.Go(func() error {
			log := a.log.GetChildLogger()
			log.Logger = log.With().Str("remote", remote.Name).Logger()

			version, err := a.remoteVersion(gctx, remote)
			if err != nil {
				failed.Add(1)
				log.Debug().Err(err).Str("func", "app.checkRemotes").Msg("remote check failed")
				lines[i] = fmt.Sprintf("%s: error: %v", remote.Name, err)
				return nil
			}
			log.Debug().Str("func", "app.checkRemotes").Str("version", string(version)).Msg("remote checked")
			lines[i] = fmt.Sprintf("%s: %s", remote.Name, version)
			return nil
		})
	}
	_ = g.Wait()

	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %d of %d remotes unreachable", ErrCheckFailed, n, len(remotes))
	}
	return nil
}

func (a *app) remoteVersion(ctx context.Context, remote models.Remote) (models.ServerVersion, error) {
	client, err := a.newClient(remote)
	if err != nil {
		return "", err
	}
	return client.GetVersion(ctx)
}

// showTable prints one remote per line. With verbose >= 1 the URL and port
// are added; with verbose >= 2 the username as well. Columns are aligned.
func showTable(ctx context.Context, out io.Writer, repo store.RemoteRepository, verbose int) error {
	remotes, err := repo.ListRemotes(ctx)
	if err != nil {
		return err
	}

	var nameWidth, urlWidth int
	for _, r := range remotes {
		nameWidth = max(nameWidth, len(r.Name))
		urlWidth = max(urlWidth, len(r.URL))
	}

	for _, r := range remotes {
		var b strings.Builder
		b.WriteString(r.Name)
		if verbose >= 1 {
			fmt.Fprintf(&b, "%s - %s [%d]", strings.Repeat(" ", nameWidth-len(r.Name)), r.URL, r.DisplayPort())
		}
		if verbose >= 2 {
			b.WriteString(strings.Repeat(" ", urlWidth-len(r.URL)))
			if r.Username != "" {
				fmt.Fprintf(&b, " (%s)", r.Username)
			}
		}
		fmt.Fprintln(out, b.String())
	}

	return nil
}

// showRemotes prints a block per named remote. It stops at the first
// unknown name.
func showRemotes(ctx context.Context, out io.Writer, repo store.RemoteRepository, names []string) error {
	for _, name := range names {
		r, err := repo.GetRemote(ctx, name)
		if err != nil {
			return noSuchRemote(err, name)
		}

		fmt.Fprintf(out, "* remote: %s\n  url: %s\n", name, r.URL)
		if r.Port != 0 {
			fmt.Fprintf(out, "  port: %d\n", r.Port)
		}
		if r.Username != "" {
			fmt.Fprintf(out, "  login: %s\n", r.Username)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q is not in 1..65535", validators.ErrInvalidRemotePort, s)
	}
	return port, nil
}
