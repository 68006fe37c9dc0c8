package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natanaeljr/gerlib/gerrit"
	"github.com/natanaeljr/gerlib/internal/config"
	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/internal/prompt"
	"github.com/natanaeljr/gerlib/internal/store"
	"github.com/natanaeljr/gerlib/internal/validators"
	"github.com/natanaeljr/gerlib/models"
)

const appName = "ger"

// Option configures the command tree built by [NewRootCmd].
type Option func(*app)

// WithRemoteRepository replaces the registry opened from the configuration.
// The caller keeps ownership of r.
func WithRemoteRepository(r store.RemoteRepository) Option {
	return func(a *app) { a.remotes = r }
}

// WithPrompter replaces the terminal password prompt.
func WithPrompter(p prompt.PasswordPrompter) Option {
	return func(a *app) { a.prompter = p }
}

// WithBuildInfo sets the metadata printed by "ger version".
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *app) { a.build = info }
}

// WithClientOptions appends options to every Gerrit client the tool builds.
func WithClientOptions(opts ...gerrit.Option) Option {
	return func(a *app) { a.clientOpts = append(a.clientOpts, opts...) }
}

// app holds what every command shares. cfg and log are set by setup before
// any RunE runs.
type app struct {
	flags   *config.StructuredConfig
	verbose int

	cfg *config.StructuredConfig
	log *logger.Logger

	remotes    store.RemoteRepository
	prompter   prompt.PasswordPrompter
	validator  validators.Validator
	build      models.AppBuildInfo
	clientOpts []gerrit.Option
}

func newApp(opts ...Option) *app {
	a := &app{
		prompter:  prompt.NewTerminal(nil, nil),
		validator: validators.NewRemoteValidator(),
		build:     models.NewAppBuildInfo("N/A", "N/A", "N/A"),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// setup loads the configuration and attaches the logger to the command
// context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}

	log, err := logger.New(cmd.ErrOrStderr(), appName, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	cmd.SetContext(log.WithContext(cmd.Context()))

	log.Debug().
		Str("func", "app.setup").
		Str("command", cmd.CommandPath()).
		Str("registry", cfg.Registry.Path).
		Msg("configuration loaded")

	return nil
}

// withRepository runs fn with the remote registry, opening and closing it
// unless one was injected.
func (a *app) withRepository(ctx context.Context, fn func(store.RemoteRepository) error) error {
	if a.remotes != nil {
		return fn(a.remotes)
	}

	repo, err := store.NewRemoteStorage(ctx, a.cfg.Registry, a.log)
	if err != nil {
		return fmt.Errorf("open remote registry: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			a.log.Warn().Err(cerr).Str("func", "app.withRepository").Msg("failed to close remote registry")
		}
	}()

	return fn(repo)
}

// newClient builds a Gerrit client for remote using the HTTP settings of
// the configuration.
func (a *app) newClient(remote models.Remote) (*gerrit.Client, error) {
	auth, err := gerrit.ParseAuthMethod(a.cfg.HTTP.Auth)
	if err != nil {
		return nil, err
	}

	opts := []gerrit.Option{
		gerrit.WithPort(remote.Port),
		gerrit.WithAuthMethod(auth),
		gerrit.WithInsecureTLS(a.cfg.HTTP.Insecure),
		gerrit.WithTimeout(a.cfg.HTTP.Timeout),
		gerrit.WithLogger(a.log.Logger),
	}
	if remote.Username != "" {
		opts = append(opts, gerrit.WithCredentials(remote.Username, remote.Password))
	}
	opts = append(opts, a.clientOpts...)

	a.log.Debug().
		Str("func", "app.newClient").
		Str("remote", remote.Name).
		Str("address", remote.Address()).
		Msg("building gerrit client")

	return gerrit.NewClient(remote.URL, opts...)
}

// selectRemote resolves the --remote flag. Without a name the only
// registered remote is used.
func selectRemote(ctx context.Context, repo store.RemoteRepository, name string) (models.Remote, error) {
	if name != "" {
		remote, err := repo.GetRemote(ctx, name)
		if err != nil {
			return models.Remote{}, noSuchRemote(err, name)
		}
		return remote, nil
	}

	remotes, err := repo.ListRemotes(ctx)
	if err != nil {
		return models.Remote{}, err
	}
	switch len(remotes) {
	case 0:
		return models.Remote{}, ErrNoRemotes
	case 1:
		return remotes[0], nil
	default:
		return models.Remote{}, ErrAmbiguousRemote
	}
}
