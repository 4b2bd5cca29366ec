package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"linkforge/internal/profile"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	doc := profile.DefaultConfig()
	doc.Profile.Name = "Preview Person"
	if err := doc.Save(path); err != nil {
		t.Fatalf("saving profile: %v", err)
	}
	return path
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{ProfilePath: writeProfile(t)})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestServePage(t *testing.T) {
	srv := New(Config{ProfilePath: writeProfile(t)})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Preview Person") {
		t.Error("page should render the profile on disk")
	}
	if strings.Contains(w.Body.String(), "WebSocket") {
		t.Error("reload script should only ship in watch mode")
	}
}

func TestServePageWatchInjectsReload(t *testing.T) {
	srv := New(Config{ProfilePath: writeProfile(t), Watch: true})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "new WebSocket") {
		t.Error("watch mode should inject the reload client")
	}
	if strings.Contains(body, "Content-Security-Policy") {
		t.Error("watch mode should strip the CSP meta")
	}
}

func TestServeMissingProfile(t *testing.T) {
	srv := New(Config{ProfilePath: filepath.Join(t.TempDir(), "missing.json")})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for missing profile, got %d", w.Code)
	}
}

func TestInjectReload(t *testing.T) {
	html := "<html><head><meta http-equiv=\"Content-Security-Policy\" content=\"default-src 'self';\" />\n</head><body><p>hi</p></body></html>"
	out := injectReload(html)

	if !strings.Contains(out, reloadScript) {
		t.Error("missing reload script")
	}
	if strings.Index(out, reloadScript) > strings.Index(out, "</body>") {
		t.Error("reload script should sit before </body>")
	}
	if strings.Contains(out, "Content-Security-Policy") {
		t.Error("CSP meta should be removed")
	}

	// No body tag: script is appended.
	if !strings.HasSuffix(injectReload("<p>x</p>"), reloadScript) {
		t.Error("script should be appended when no body tag exists")
	}
}
