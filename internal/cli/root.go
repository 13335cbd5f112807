package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/todoclient/app"
	"github.com/fastygo/todoclient/internal/config"
	"github.com/fastygo/todoclient/pkg/logger"
)

// Execute builds the client and runs the command tree.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	client, err := app.New(cfg, zapLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}

	root := newRootCmd(client)
	err = root.Execute()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Context.ShutdownTimeout)
	defer cancel()
	if shutdownErr := client.Shutdown(shutdownCtx); shutdownErr != nil {
		zapLogger.Warn("shutdown incomplete", zap.Error(shutdownErr))
	}

	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(client *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "Command-line client for the to-do service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client.Init(cmd.Context())
		},
	}

	root.AddCommand(
		newLoginCmd(client),
		newLogoutCmd(client),
		newRegisterCmd(client),
		newActivateCmd(client),
		newForgotPasswordCmd(client),
		newResetPasswordCmd(client),
		newTasksCmd(client),
		newWhoamiCmd(client),
		newStatusCmd(client),
		newWatchCmd(client),
	)
	return root
}
