package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// WriteZip packages the rendered document as a single-entry archive with
// index.html at the root, matching what static hosts expect from a
// drag-and-drop upload.
func WriteZip(w io.Writer, html string) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create("index.html")
	if err != nil {
		return fmt.Errorf("create zip entry: %w", err)
	}
	if _, err := io.WriteString(f, html); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize zip: %w", err)
	}
	return nil
}

// ZipFilename derives the download name from the profile username.
func ZipFilename(username string) string {
	name := strings.TrimSpace(username)
	if name == "" {
		name = "linkforge"
	}
	return name + "-bio.zip"
}
