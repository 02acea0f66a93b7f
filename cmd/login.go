package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your SparkVibe account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := domain.ValidateSignInForm(email, password); len(errs) > 0 {
				return reportFieldErrors(cmd, errs)
			}

			notifier := app.notify(cmd)
			err := runAuthSpinner(cmd.Context(), cmd.OutOrStdout(), "Signing you in...",
				func(ctx context.Context) error {
					_, err := app.sessions.Login(ctx, email, password)
					return err
				})

			switch {
			case err == nil:
				notifier.Success("Welcome back!")
				return nil
			case errors.Is(err, domain.ErrAccountNotFound):
				notifier.Error("User not found. Please sign up first.")
			case errors.Is(err, domain.ErrInvalidCredential):
				notifier.Error("Invalid password")
			default:
				app.logger.Error("sign in failed", zap.Error(err))
				notifier.Error("An error occurred during sign in")
			}

			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of your SparkVibe account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Logout(cmd.Context())
			app.notify(cmd).Info("You have been signed out")

			return nil
		},
	}
}
