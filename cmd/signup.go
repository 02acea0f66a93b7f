package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

var errValidationFailed = errors.New("validation failed")

func newSignupCmd(app *app) *cobra.Command {
	var email, password, confirm, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a SparkVibe account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := domain.ValidateSignUpForm(email, password, confirm, name); len(errs) > 0 {
				return reportFieldErrors(cmd, errs)
			}

			notifier := app.notify(cmd)
			err := runAuthSpinner(cmd.Context(), cmd.OutOrStdout(), "Creating your account...",
				func(ctx context.Context) error {
					_, err := app.sessions.Register(ctx, email, password, name)
					return err
				})

			switch {
			case err == nil:
				notifier.Success("Account created successfully!")
				return nil
			case errors.Is(err, domain.ErrDuplicateEmail):
				notifier.Error("User already exists with this email")
			default:
				app.logger.Error("sign up failed", zap.Error(err))
				notifier.Error("An error occurred during sign up")
			}

			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation")
	cmd.Flags().StringVar(&name, "name", "", "Display name")

	return cmd
}

func reportFieldErrors(cmd *cobra.Command, errs domain.FieldErrors) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
	}

	return errValidationFailed
}
