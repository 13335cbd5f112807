package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastygo/todoclient/app"
)

func newStatusCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe the API and report connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := client.Monitor.Probe(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "api reachable: %v\n", status.API)
			fmt.Fprintf(out, "session valid: %v\n", status.Authenticated)
			fmt.Fprintf(out, "logged in locally: %v\n", client.Session.IsLoggedIn())
			return nil
		},
	}
}

func newWatchCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the task snapshot fresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			client.StartBackground()
			client.ListenForSignals(cancel)

			// one immediate pull so the first interval is not wasted
			if err := client.Refresher.Pull(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "watching, press Ctrl-C to stop")
			<-ctx.Done()
			return nil
		},
	}
}
