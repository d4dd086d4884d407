package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docnav configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that detects the docs directory and its category folders and writes a .docnav.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
