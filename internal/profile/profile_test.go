package profile

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("version: got %q, want %q", cfg.Version, CurrentVersion)
	}
	if len(cfg.Links) == 0 {
		t.Error("expected a starter link")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	original := DefaultConfig()
	original.Profile.Name = "Jane Doe"
	original.Profile.Username = "janedoe"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Profile.Name != "Jane Doe" {
		t.Errorf("name: got %q, want %q", loaded.Profile.Name, "Jane Doe")
	}
	if loaded.Version != CurrentVersion {
		t.Errorf("version: got %q, want %q", loaded.Version, CurrentVersion)
	}
}

func TestParseMigratesV1(t *testing.T) {
	doc := `{
		"version": "1.0",
		"profile": {"name": "Jane", "username": "jane", "bio": ""},
		"links": [{"id": "a1", "title": "Site", "url": "https://example.com", "enabled": true, "order": 0, "target": ""}],
		"theme": {},
		"seo": {},
		"settings": {}
	}`

	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("version: got %q, want %q", cfg.Version, CurrentVersion)
	}
	if cfg.Links[0].Target != "_blank" {
		t.Errorf("migrated target: got %q, want %q", cfg.Links[0].Target, "_blank")
	}
	if cfg.Testimonials == nil {
		t.Error("expected testimonials to be seeded by migration")
	}
}

func TestParseRejectsMissingVersion(t *testing.T) {
	if _, err := Parse([]byte(`{"profile": {}}`)); err == nil {
		t.Error("expected error for document without version")
	}
}

func TestParseRejectsFutureVersion(t *testing.T) {
	if _, err := Parse([]byte(`{"version": "99"}`)); err == nil {
		t.Error("expected error for document from a newer build")
	}
}

func TestValidateDuplicateID(t *testing.T) {
	cfg := DefaultConfig()
	dup := cfg.Links[0]
	dup.Order = 1
	cfg.Links = append(cfg.Links, dup)
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for duplicate link id")
	}
}

func TestValidateDuplicateOrder(t *testing.T) {
	cfg := DefaultConfig()
	second := cfg.Links[0]
	second.ID = NewID()
	cfg.Links = append(cfg.Links, second)
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for duplicate order")
	}
}

func TestValidateNonContiguousOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Links[0].Order = 5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-contiguous order values")
	}
}

func TestValidateRejectsJavascriptURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Links[0].URL = "javascript:alert(1)"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for javascript: url")
	}
}

func TestValidateTabReferences(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tabs = []HubTab{{ID: "t1", Label: "Main", LinkIDs: []string{"nope"}}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tab referencing unknown link id")
	}

	cfg.Tabs[0].LinkIDs = []string{cfg.Links[0].ID}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid tab reference should pass, got: %v", err)
	}
}

func TestValidateLengthCaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.Name = strings.Repeat("x", 51)
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for name over 50 characters")
	}

	cfg = DefaultConfig()
	cfg.Links[0].Title = strings.Repeat("x", 101)
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for title over 100 characters")
	}
}

func TestValidateRejectsNonHexColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Colors.CardBackground = `#fff" onmouseover="alert(1)`
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for a non-hex theme color")
	}

	cfg = DefaultConfig()
	cfg.Theme.Colors.Accent = "rebeccapurple"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for a named color, colors are hex only")
	}
}

func TestValidateRejectsBadTargetDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Links[0].Type = BlockCountdown
	cfg.Links[0].TargetDate = "next tuesday"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for an unparseable target date")
	}
}

func TestParseTargetDate(t *testing.T) {
	for _, raw := range []string{
		"2027-01-01T00:00:00Z",
		"2027-01-01T00:00:00",
		"2027-01-01T00:00",
		"2027-01-01",
	} {
		if _, err := ParseTargetDate(raw); err != nil {
			t.Errorf("ParseTargetDate(%q): %v", raw, err)
		}
	}
	if _, err := ParseTargetDate("next tuesday"); err == nil {
		t.Error("expected error for a non-date string")
	}
}

func TestParseResequencesMigratedLinks(t *testing.T) {
	// The 1.x editor had no order field; migrated links take array order.
	doc := `{
		"version": "1.0",
		"profile": {"name": "Jane", "username": "jane", "bio": ""},
		"links": [
			{"id": "a1", "title": "Site", "url": "https://example.com", "enabled": true, "target": "_blank"},
			{"id": "a2", "title": "Shop", "url": "https://example.com/shop", "enabled": true, "target": "_blank"}
		],
		"theme": {},
		"seo": {},
		"settings": {}
	}`

	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for i, l := range cfg.Links {
		if l.Order != i {
			t.Errorf("links[%d].Order = %d, want %d", i, l.Order, i)
		}
	}
}

func TestResequence(t *testing.T) {
	links := []LinkItem{
		{ID: "a", Order: 4},
		{ID: "b", Order: 9},
		{ID: "c", Order: 12},
	}
	Resequence(links)
	for i, l := range links {
		if l.Order != i {
			t.Errorf("links[%d].Order = %d, want %d", i, l.Order, i)
		}
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 8 {
		t.Errorf("NewID length = %d, want 8", len(a))
	}
	if a == b {
		t.Error("consecutive ids should differ")
	}
}

func TestVCard(t *testing.T) {
	p := Profile{
		Name:     "Jane; Doe",
		Bio:      "Builder,\nmaker",
		Phone:    "+62 812 0000",
		Email:    "jane@example.com",
		Location: "Jakarta",
	}
	card := p.VCard("https://example.com/jane")

	if !strings.HasPrefix(card, "BEGIN:VCARD\r\nVERSION:3.0") {
		t.Errorf("unexpected vCard preamble: %q", card[:40])
	}
	if !strings.HasSuffix(card, "END:VCARD") {
		t.Error("vCard should end with END:VCARD")
	}
	if !strings.Contains(card, `FN:Jane\; Doe`) {
		t.Error("semicolon in name should be escaped")
	}
	if !strings.Contains(card, `NOTE:Builder\,\nmaker`) {
		t.Errorf("bio escaping wrong: %q", card)
	}
	if !strings.Contains(card, "EMAIL;TYPE=INTERNET:jane@example.com") {
		t.Error("missing email line")
	}
	if !strings.Contains(card, "URL:https://example.com/jane") {
		t.Error("missing url line")
	}
}

func TestHasContact(t *testing.T) {
	if (Profile{}).HasContact() {
		t.Error("empty profile should have no contact")
	}
	if !(Profile{Phone: "123"}).HasContact() {
		t.Error("phone alone should count as contact")
	}
	if !(Profile{Email: "a@b.co"}).HasContact() {
		t.Error("email alone should count as contact")
	}
}

func TestEffectiveType(t *testing.T) {
	if (LinkItem{}).EffectiveType() != BlockLink {
		t.Error("empty type should normalize to link")
	}
	if (LinkItem{Type: BlockCountdown}).EffectiveType() != BlockCountdown {
		t.Error("explicit type should pass through")
	}
}
