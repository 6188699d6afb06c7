// Package cli is the inbound adapter for todoctl. It exposes the ToDo
// service as a cobra command tree and renders results as JSON, YAML or a
// table.
//
// Configuration is resolved lazily: the root command's PersistentPreRunE
// calls the Bootstrap function with the selected profile, so help output
// and flag errors never touch storage.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// ProfileEnv names the environment variable holding the default profile.
const ProfileEnv = "APP_PROFILE"

const defaultProfile = "local"

// Runtime carries the collaborators the commands need once configuration
// has been loaded.
type Runtime struct {
	Service ports.ToDoService
	Health  ports.HealthRegistry
	Logger  *slog.Logger
	// Output is the configured default output format.
	Output string
	// Close releases resources opened by Bootstrap. May be nil.
	Close func() error
}

// Bootstrap builds a Runtime for the given profile.
type Bootstrap func(ctx context.Context, profile string) (*Runtime, error)

// options holds the global flag values.
type options struct {
	profile string
	owner   string
	output  string
}

// app is the state shared by every subcommand.
type app struct {
	boot Bootstrap
	opts options
	rt   *Runtime
}

// NewRootCommand builds the todoctl command tree.
func NewRootCommand(boot Bootstrap) *cobra.Command {
	a := &app{boot: boot}

	root := &cobra.Command{
		Use:   "todoctl",
		Short: "Manage ToDos from the command line",
		Long: `todoctl creates, updates, lists and fetches ToDos for a single owner.

Storage, logging and event publishing are configured per profile from
configs/{profile}.yaml with APP_ environment overrides.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: a.setup,
	}

	profile := os.Getenv(ProfileEnv)
	if profile == "" {
		profile = defaultProfile
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.profile, "profile", profile, "configuration profile (env "+ProfileEnv+")")
	flags.StringVar(&a.opts.owner, "owner", "", "owner id the command acts for")
	flags.StringVarP(&a.opts.output, "output", "o", "", "output format: json, yaml or table (default from config)")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &flagError{err: err}
	})

	root.AddCommand(
		a.newCreateCommand(),
		a.newUpdateCommand(),
		a.newListCommand(),
		a.newGetCommand(),
		a.newHealthCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	rt, err := a.boot(cmd.Context(), a.opts.profile)
	if err != nil {
		return fmt.Errorf("loading profile %q: %w", a.opts.profile, err)
	}
	if rt.Logger == nil {
		rt.Logger = slog.New(slog.DiscardHandler)
	}
	a.rt = rt

	switch a.format() {
	case FormatJSON, FormatYAML, FormatTable:
		// Supported.
	default:
		_ = a.teardown(cmd, nil)
		return domain.NewFieldError("output", "must be one of: json, yaml, table")
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), rt.Logger))
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.rt == nil || a.rt.Close == nil {
		return nil
	}
	closeFn := a.rt.Close
	a.rt.Close = nil
	return closeFn()
}

// run wraps a command body so the Runtime is released whether or not the
// body fails; cobra skips post-run hooks after an error.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if closeErr := a.teardown(cmd, args); err == nil {
				err = closeErr
			}
		}()
		return fn(cmd, args)
	}
}

// format returns the effective output format.
func (a *app) format() string {
	if a.opts.output != "" {
		return a.opts.output
	}
	if a.rt != nil && a.rt.Output != "" {
		return a.rt.Output
	}
	return FormatTable
}

// Execute runs root with args and returns the process exit code. Errors are
// written to stderr.
func Execute(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	WriteError(stderr, err)

	var flagErr *flagError
	if errors.As(err, &flagErr) {
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	}
	return ExitCode(err)
}
