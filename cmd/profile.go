package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sessionrender "github.com/sparkvibe/sparkvibe-cli/internal/adapters/render/session"
	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileUpdateCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := app.sessions.Session()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), sessionrender.Render(sess, nil))
			return err
		},
	}
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var (
		name          string
		email         string
		theme         string
		notifications bool
		newsletter    bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields and preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifier := app.notify(cmd)

			sess := app.sessions.Session()
			if !sess.Authenticated {
				notifier.Info("Sign in to manage your profile")
				return nil
			}

			flags := cmd.Flags()
			errs := domain.FieldErrors{}
			var update domain.ProfileUpdate

			if flags.Changed("name") {
				if msg := domain.ValidateDisplayName(name); msg != "" {
					errs["displayName"] = msg
				}
				update.DisplayName = &name
			}
			if flags.Changed("email") {
				if msg := domain.ValidateEmail(email); msg != "" {
					errs["email"] = msg
				}
				update.Email = &email
			}

			if flags.Changed("theme") || flags.Changed("notifications") || flags.Changed("newsletter") {
				prefs := sess.Account.Preferences
				if flags.Changed("theme") {
					next := domain.Theme(theme)
					if !next.Valid() {
						errs["theme"] = "Theme must be light or dark"
					}
					prefs.Theme = next
				}
				if flags.Changed("notifications") {
					prefs.Notifications = notifications
				}
				if flags.Changed("newsletter") {
					prefs.Newsletter = newsletter
				}
				update.Preferences = &prefs
			}

			if len(errs) > 0 {
				return reportFieldErrors(cmd, errs)
			}
			if update.IsEmpty() {
				notifier.Info("Nothing to update")
				return nil
			}

			if err := app.sessions.UpdateProfile(cmd.Context(), update); err != nil {
				app.logger.Error("profile update failed", zap.Error(err))
				notifier.Error("An error occurred while updating your profile")
				return err
			}

			notifier.Success("Profile updated successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&theme, "theme", "", "Preferred theme (light or dark)")
	cmd.Flags().BoolVar(&notifications, "notifications", false, "Enable product notifications")
	cmd.Flags().BoolVar(&newsletter, "newsletter", false, "Subscribe to the newsletter")

	return cmd
}
