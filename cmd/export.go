package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"linkforge/internal/export"
)

var (
	exportOut  string
	exportHTML bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the page and package it as a ZIP",
	Long: `Renders the profile document to a single self-contained index.html
and writes <username>-bio.zip to the output directory, ready to drop
onto any static host. With --html the bare index.html is written
alongside the archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadProfile(cfg)
		if err != nil {
			return err
		}

		html, err := export.Generate(doc)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}

		outDir := cfg.OutputDir
		if exportOut != "" {
			outDir = exportOut
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", outDir, err)
		}

		zipPath := filepath.Join(outDir, export.ZipFilename(doc.Profile.Username))
		f, err := os.Create(zipPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", zipPath, err)
		}
		if err := export.WriteZip(f, html); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", zipPath, err)
		}
		fmt.Printf("Exported %s (%s of HTML)\n", zipPath, humanSize(len(html)))

		if exportHTML {
			htmlPath := filepath.Join(outDir, "index.html")
			if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", htmlPath, err)
			}
			fmt.Printf("Wrote %s\n", htmlPath)
		}

		return nil
	},
}

func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "also write the bare index.html")
	rootCmd.AddCommand(exportCmd)
}
