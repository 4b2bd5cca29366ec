package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkforge/internal/profile"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the profile document for errors",
	Long: `Loads the profile document, migrates it to the current document
version in memory, and reports every validation problem: schema
violations, duplicate ids, broken tab references and unsafe URLs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}

		if err := doc.Validate(); err != nil {
			return fmt.Errorf("%s is invalid:\n%w", cfg.ProfilePath, err)
		}

		fmt.Printf("%s is valid (%d links, %d tabs, %d testimonials)\n",
			cfg.ProfilePath, len(doc.Links), len(doc.Tabs), len(doc.Testimonials))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
