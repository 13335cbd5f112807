package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastygo/todoclient/api/transport"
	"github.com/fastygo/todoclient/app"
)

func newLoginCmd(client *app.App) *cobra.Command {
	var password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login <identifier>",
		Short: "Authenticate and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.Dispatcher.Dispatch(cmd.Context(), "auth.login", app.LoginPayload{
				Identifier: args[0],
				Password:   password,
				RememberMe: remember,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "ask the server for a long-lived session")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the session and clear local state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Dispatcher.Dispatch(cmd.Context(), "auth.logout", nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd(client *app.App) *cobra.Command {
	var req transport.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Auth.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account created, check your email for the activation token")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.UserName, "username", "", "account username")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newActivateCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <token>",
		Short: "Activate a freshly registered account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Auth.Activate(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account activated")
			return nil
		},
	}
}

func newForgotPasswordCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Auth.RequestPasswordReset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset email requested")
			return nil
		},
	}
}

func newResetPasswordCmd(client *app.App) *cobra.Command {
	var token, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Auth.SubmitNewPassword(cmd.Context(), token, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "reset token from the email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newWhoamiCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Dispatcher.Dispatch(cmd.Context(), "profile.refresh", nil); err != nil {
				return err
			}
			profile := client.Profile.User()
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", profile.DisplayName(), profile.Email)
			return nil
		},
	}
}
