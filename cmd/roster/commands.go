package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster/cli"
	"github.com/dmitrijs2005/roster/internal/roster/config"
	"github.com/spf13/cobra"
)

// runtime holds what PersistentPreRunE prepared for the selected command.
type runtime struct {
	cfg *config.Config
	log logging.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Employee roster console",
		Long: `roster loads employee records from a comma-separated file and lets you
sort, list, search, add and generate records. New records are appended to
the same file.

Run without arguments to start the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogBackend, cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			rt.cfg, rt.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s, ok := rt.log.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.app(cmd)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:     "top",
			Short:   "Sort by full name and print the first N records (-n/--top, default 20)",
			Example: "  roster top -n 5",
			Args:    cobra.NoArgs,
			RunE: rt.loaded(func(ctx context.Context, app *cli.App, _ []string) error {
				return app.SortAndList(ctx)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print every record in file order",
			Args:  cobra.NoArgs,
			RunE: rt.loaded(func(ctx context.Context, app *cli.App, _ []string) error {
				return app.ListAll(ctx)
			}),
		},
		&cobra.Command{
			Use:     "search <first name> <last name>",
			Short:   "Find a record by full name, ignoring case",
			Example: "  roster search Ana Silva",
			Args:    cobra.MinimumNArgs(1),
			RunE: rt.loaded(func(ctx context.Context, app *cli.App, args []string) error {
				return app.SearchFor(ctx, strings.Join(args, " "))
			}),
		},
		newGenerateCmd(rt),
		&cobra.Command{
			Use:   "add",
			Short: "Prompt for a new record and append it to the roster",
			Args:  cobra.NoArgs,
			RunE: rt.loaded(func(ctx context.Context, app *cli.App, _ []string) error {
				return app.Add(ctx)
			}),
		},
	)

	return root
}

func newGenerateCmd(rt *runtime) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random records and append them to the roster",
		Args:  cobra.NoArgs,
		RunE: rt.loaded(func(ctx context.Context, app *cli.App, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			return app.GenerateN(ctx, count)
		}),
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of records to generate")

	return cmd
}

func (rt *runtime) app(cmd *cobra.Command) (*cli.App, error) {
	return cli.NewApp(cmd.Context(), rt.cfg, rt.log, cmd.InOrStdin(), cmd.OutOrStdout())
}

// loaded adapts fn into a RunE that opens the roster, loads it, runs fn and
// closes the storage.
func (rt *runtime) loaded(fn func(ctx context.Context, app *cli.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := rt.app(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if err := app.Close(); err != nil {
				rt.log.Warn(cmd.Context(), "error closing storage", "err", err)
			}
		}()

		app.Load(cmd.Context())
		return fn(cmd.Context(), app, args)
	}
}
