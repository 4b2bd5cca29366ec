package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkforge/internal/assets"
	"linkforge/internal/profile"
)

var (
	assetsMaxDim   int
	assetsTargetKB int
)

var embedAssetsCmd = &cobra.Command{
	Use:   "embed-assets",
	Short: "Inline local images into the profile as data URLs",
	Long: `Finds local image paths in the profile document (avatar, favicon,
og:image, QR codes, portfolio entries and globs), downscales and
re-encodes them, and rewrites each reference as a data URL so the
exported page needs no image files next to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}

		opts := assets.Options{
			MaxDimension: cfg.Assets.MaxDimension,
			TargetBytes:  cfg.Assets.TargetKB * 1024,
		}
		if cmd.Flags().Changed("max-dimension") {
			opts.MaxDimension = assetsMaxDim
		}
		if cmd.Flags().Changed("target-kb") {
			opts.TargetBytes = assetsTargetKB * 1024
		}

		n, err := assets.InlineProfile(doc, opts)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("No local images to inline")
			return nil
		}

		if err := doc.Save(cfg.ProfilePath); err != nil {
			return err
		}
		fmt.Printf("Inlined %d image(s) into %s\n", n, cfg.ProfilePath)
		return nil
	},
}

func init() {
	embedAssetsCmd.Flags().IntVar(&assetsMaxDim, "max-dimension", 400, "longest image side in pixels")
	embedAssetsCmd.Flags().IntVar(&assetsTargetKB, "target-kb", 150, "encoded size to aim for, per image")
	rootCmd.AddCommand(embedAssetsCmd)
}
