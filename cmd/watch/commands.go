package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/app"
	"github.com/heartmarshall/fortune-watch/internal/config"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

const dateLayout = "2006-01-02"

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run <calendar|anniversary|daily|all>",
		Short:     "Run one batch family (or all of them) once and exit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"calendar", "anniversary", "daily", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			family, all, err := parseFamily(args[0])
			if err != nil {
				return err
			}

			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var opts []app.Option
			if raw, _ := cmd.Flags().GetString("date"); raw != "" {
				day, err := time.Parse(dateLayout, raw)
				if err != nil {
					return fmt.Errorf("--date: expected YYYY-MM-DD: %w", err)
				}
				opts = append(opts, app.WithDate(day))
			}

			ctx := cmd.Context()
			w, err := app.NewWatcher(ctx, cfg, log, opts...)
			if err != nil {
				return err
			}
			defer w.Close()

			if all {
				_, err = w.RunAll(ctx)
				return err
			}
			_, err = w.RunFamily(ctx, family)
			return err
		},
	}

	cmd.Flags().String("date", "", "treat this civil date (YYYY-MM-DD, watch timezone) as today")

	return cmd
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run every batch family on its crontab until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			w, err := app.NewWatcher(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Schedule(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			applied, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, log)
			if err != nil {
				return err
			}
			log.Info("migrations applied", slog.Int("count", applied))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(app.BuildVersion())
		},
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	return *cfg, app.NewLogger(cfg.Log), nil
}

// parseFamily resolves the run argument; all reports the "all" keyword.
func parseFamily(arg string) (family domain.Family, all bool, err error) {
	if arg == "all" {
		return "", true, nil
	}
	f := domain.Family(arg)
	if !f.IsValid() {
		return "", false, fmt.Errorf("unknown batch family %q (want calendar, anniversary, daily or all)", arg)
	}
	return f, false, nil
}
