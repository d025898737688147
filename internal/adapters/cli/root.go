// Package cli implements the planfix command-line tool: a cobra command tree
// with one subcommand per Planfix operation. Results are written to stdout
// as indented JSON; errors go to stderr and select the exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix"
	"github.com/jsamuelsen11/go-planfix/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// Exit codes for the CLI.
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitAPIError           = 2
	ExitUnexpectedResponse = 3
	ExitUnavailable        = 4
	ExitUnhealthy          = 5
)

var (
	// errUnavailable is returned when a download answered with a non-200 status.
	errUnavailable = errors.New("not available")
	// errUnhealthy is returned by the health command when a check failed.
	errUnhealthy = errors.New("unhealthy")
)

// Options are the global flags.
type Options struct {
	Profile   string
	ConfigDir string
}

// App holds the dependencies commands run against.
type App struct {
	Client   ports.PlanfixClient
	Comments ports.CommentService
	Tasks    ports.TaskService
	Health   ports.HealthRegistry
	// Fetcher downloads arbitrary URLs without Planfix credentials.
	Fetcher planfix.Doer
	Logger  *slog.Logger
	// Shutdown flushes telemetry; may be nil.
	Shutdown func(context.Context) error
}

// Builder wires an App for the selected profile. It runs once per
// invocation, after flags are parsed.
type Builder func(ctx context.Context, opts Options) (*App, error)

// runtime carries per-invocation state shared by the command tree.
type runtime struct {
	opts   Options
	build  Builder
	app    *App
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, args []string, build Builder, stdout, stderr io.Writer) int {
	rt := &runtime{build: build, stdout: stdout, stderr: stderr}

	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	if rt.app != nil && rt.app.Shutdown != nil {
		if shutdownErr := rt.app.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			rt.app.Logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, planfix.ErrAPI):
		return ExitAPIError
	case errors.Is(err, planfix.ErrShapeMismatch):
		return ExitUnexpectedResponse
	case errors.Is(err, errUnavailable):
		return ExitUnavailable
	case errors.Is(err, errUnhealthy):
		return ExitUnhealthy
	default:
		return ExitGeneralError
	}
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "planfix",
		Short: "Command-line client for the Planfix REST API",
		Long: `planfix calls the Planfix REST API: tasks, comments, users, contacts and files.

Configuration is read from configs/base.yaml, then configs/{profile}.yaml,
then APP_* environment variables (for example APP_PLANFIX_TOKEN).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.setup,
	}

	root.PersistentFlags().StringVarP(&rt.opts.Profile, "profile", "p", "local", "configuration profile")
	root.PersistentFlags().StringVar(&rt.opts.ConfigDir, "config-dir", "configs", "directory holding the YAML profiles")

	root.AddCommand(
		newTaskCommand(rt),
		newCommentCommand(rt),
		newUserCommand(rt),
		newContactCommand(rt),
		newFileCommand(rt),
		newHealthCommand(rt),
	)
	return root
}

// setup builds the App and stamps a fresh request id into the context.
func (rt *runtime) setup(cmd *cobra.Command, _ []string) error {
	app, err := rt.build(cmd.Context(), rt.opts)
	if err != nil {
		return err
	}
	if app.Logger == nil {
		app.Logger = logging.Discard()
	}
	rt.app = app

	requestID := uuid.NewString()
	ctx := httpclient.WithRequestID(cmd.Context(), requestID)
	ctx = logging.WithLogger(ctx, app.Logger.With(slog.String("request_id", requestID)))
	cmd.SetContext(ctx)

	app.Logger.DebugContext(ctx, "command started",
		slog.String("command", cmd.CommandPath()),
		slog.String("request_id", requestID),
	)
	return nil
}
