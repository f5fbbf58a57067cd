package cmd

import (
	"github.com/spf13/cobra"

	"github.com/git-kubik/azure-architecture-map/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize azmap configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure azmap and generates the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
