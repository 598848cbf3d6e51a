package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"coursework/internal/journal"
	"coursework/internal/logging"
	"coursework/internal/messages"
	"coursework/internal/metrics"
	"coursework/internal/notifications"
	"coursework/internal/session"
)

type sessionRun func(ctx context.Context, env *sessionEnv, in io.Reader, out io.Writer) (session.Report, error)

type sessionEnv struct {
	runner *session.Runner
	center *notifications.Center
}

func newNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Run the notification center session on stdin",
		Long: `Reads a notification message from the first line of stdin and then one
command per line:

  nova_instancia | new_instance   acquire the notification center again
  adicionar      | add            store the message
  listar         | list           print every stored notification`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runSession(cmd, "notify", func(runCtx context.Context, env *sessionEnv, in io.Reader, out io.Writer) (session.Report, error) {
				return env.runner.Notifications(runCtx, env.center, in, out)
			})
		},
	}
}

func newCourseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "course",
		Short: "Run the course workload session on stdin",
		Long: `Reads blocks of two lines from stdin:

  <title>; <semesters>; <pos|grad>
  <unit>; <unit>; ...

and prints the workload hours and unit list of each course.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runSession(cmd, "course", func(runCtx context.Context, env *sessionEnv, in io.Reader, out io.Writer) (session.Report, error) {
				return env.runner.Courses(runCtx, in, out)
			})
		},
	}
}

func (c *commandContext) runSession(cmd *cobra.Command, name string, run sessionRun) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String("command", name))

	printer, err := messages.New(cfg.Messages.Language)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	m := metrics.New()
	opts := session.Options{
		Printer:  printer,
		Rates:    courseRates(cfg),
		Observer: m,
		Logger:   logger,
	}

	if cfg.Journal.Enabled {
		store, err := journal.Open(runCtx, cfg)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				logger.Warn("journal close failed", logging.Error(closeErr))
			}
		}()
		record, err := store.BeginSession(runCtx, name, printer.Language().String())
		if err != nil {
			return fmt.Errorf("begin journal session: %w", err)
		}
		logger = logger.With(logging.String(logging.FieldSession, record.ID))
		opts.Logger = logger
		opts.Recorder = store.Recorder(record)
	}

	runner, err := session.New(opts)
	if err != nil {
		return err
	}
	env := &sessionEnv{
		runner: runner,
		center: notifications.NewCenter(notifications.WithLogger(logger)),
	}

	report, runErr := run(runCtx, env, cmd.InOrStdin(), cmd.OutOrStdout())
	logger.Info("session finished",
		logging.Int("acquisitions", report.Acquisitions),
		logging.Int("notifications", report.Notifications),
		logging.Int("unknown_commands", report.UnknownCommands),
		logging.Int("courses", report.Courses),
		logging.Int("rejections", report.Rejections),
	)

	if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("metrics textfile write failed", logging.Error(err))
	}
	return runErr
}
