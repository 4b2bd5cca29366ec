package cmd

import (
	"github.com/spf13/cobra"

	"linkforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new page with an interactive wizard",
	Long:  `Runs an interactive wizard that creates a starter profile.json and a .linkforge.yml config file in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
