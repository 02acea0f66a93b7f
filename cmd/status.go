package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	sessionrender "github.com/sparkvibe/sparkvibe-cli/internal/adapters/render/session"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and cart summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := app.sessions.Session()
			items := app.cart.Items(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), sessionrender.Render(sess, items))
			return err
		},
	}
}
