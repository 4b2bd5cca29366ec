package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, "<!DOCTYPE html><html></html>"); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(zr.File))
	}
	if zr.File[0].Name != "index.html" {
		t.Errorf("entry name = %q, want index.html", zr.File[0].Name)
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("opening entry: %v", err)
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if string(content) != "<!DOCTYPE html><html></html>" {
		t.Errorf("entry content = %q", content)
	}
}

func TestZipFilename(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"janedoe", "janedoe-bio.zip"},
		{"", "linkforge-bio.zip"},
		{"  ", "linkforge-bio.zip"},
	}
	for _, tt := range tests {
		if got := ZipFilename(tt.username); got != tt.want {
			t.Errorf("ZipFilename(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}
