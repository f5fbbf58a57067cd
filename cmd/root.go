package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "azmap",
	Short: "Interactive Azure architecture map",
	Long: `azmap serves an interactive node-and-edge map of Azure service
categories. Pan, zoom, search, attach notes to services, and save or
restore the whole view from a local datastore.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "azmap.yml", "config file path")
}
