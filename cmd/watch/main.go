// Command watch runs the proactive notification batches of watch mode.
//
// It can run a batch family once (for an external cron), keep an in-process
// crontab schedule, or apply database migrations.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fortune-watch/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "watch",
		Short:         "Watch-mode proactive notification scheduler",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to config.yaml (overrides CONFIG_PATH)")

	root.AddCommand(runCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(versionCmd())

	return root
}
