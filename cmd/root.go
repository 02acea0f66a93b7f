package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sparkvibe",
		Short:         "SparkVibe storefront shell: accounts, profiles and cart",
		Long:          "sparkvibe manages your SparkVibe account, profile preferences and shopping cart from the terminal. All state lives in a local store; there is no server behind it.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newProfileCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
	)

	return rootCmd
}
