package profile

// CurrentVersion is the profile document version written by this build.
// Migrate upgrades older documents to this version at load time.
const CurrentVersion = "2"

// BlockType discriminates the LinkItem variants. An empty type means a
// plain link.
type BlockType string

const (
	BlockLink      BlockType = "link"
	BlockHeader    BlockType = "header"
	BlockAction    BlockType = "action"
	BlockDonation  BlockType = "donation"
	BlockPortfolio BlockType = "portfolio"
	BlockCountdown BlockType = "countdown"
	BlockLeadForm  BlockType = "lead-form"
)

// ProfileConfig is the top-level profile document (profile.json). It owns
// every other entity by value; the export renderer receives it as a
// read-only snapshot.
type ProfileConfig struct {
	Version      string        `json:"version" validate:"required"`
	Profile      Profile       `json:"profile"`
	Links        []LinkItem    `json:"links" validate:"dive"`
	Theme        ThemeConfig   `json:"theme"`
	Seo          SeoConfig     `json:"seo"`
	Settings     AppSettings   `json:"settings"`
	Testimonials []Testimonial `json:"testimonials,omitempty" validate:"dive"`
	Tabs         []HubTab      `json:"tabs,omitempty" validate:"dive"`
}

// Profile holds the page owner's identity.
type Profile struct {
	Name     string `json:"name" validate:"required,max=50"`
	Username string `json:"username" validate:"required,max=30"`
	Bio      string `json:"bio" validate:"max=300"`
	Avatar   string `json:"avatar"`
	Location string `json:"location,omitempty" validate:"max=100"`
	Phone    string `json:"phone,omitempty" validate:"max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// LinkItem is one block in the ordered list. The Type tag selects the
// variant; the optional payload for each variant lives in its own field
// group and is ignored by the other variants.
type LinkItem struct {
	ID      string    `json:"id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=100"`
	URL     string    `json:"url"`
	Icon    string    `json:"icon,omitempty"`
	Enabled bool      `json:"enabled"`
	Order   int       `json:"order" validate:"min=0"`
	Target  string    `json:"target" validate:"oneof=_blank _self"`
	Type    BlockType `json:"type,omitempty" validate:"omitempty,oneof=link header action donation portfolio countdown lead-form"`

	// Cross-cutting flags, valid on any type.
	IsEmbed    bool   `json:"isEmbed,omitempty"`
	IsPdfEmbed bool   `json:"isPdfEmbed,omitempty"`
	ValidFrom  string `json:"validFrom,omitempty"`
	ValidUntil string `json:"validUntil,omitempty"`

	// Password gate. EncryptedURL is the lockbox token; the plaintext URL
	// must never reach the exported document when IsLocked is set.
	IsLocked     bool   `json:"isLocked,omitempty"`
	EncryptedURL string `json:"encryptedUrl,omitempty"`

	// type == "action"
	Action *ActionConfig `json:"actionConfig,omitempty"`

	// type == "donation"
	DonationPlatform string `json:"donationPlatform,omitempty" validate:"omitempty,oneof=qris saweria trakteer kofi patreon bmac"`
	DonationCta      string `json:"donationCta,omitempty" validate:"max=200"`
	QrisImage        string `json:"qrisImage,omitempty"`

	// type == "portfolio"
	PortfolioImages  []PortfolioImage `json:"portfolioImages,omitempty" validate:"dive"`
	PortfolioColumns int              `json:"portfolioColumns,omitempty" validate:"omitempty,min=1,max=4"`
	PortfolioGap     string           `json:"portfolioGap,omitempty" validate:"omitempty,oneof=small medium large"`

	// type == "countdown"
	TargetDate string `json:"targetDate,omitempty"`
	TimerLabel string `json:"timerLabel,omitempty" validate:"max=100"`
	TimerStyle string `json:"timerStyle,omitempty" validate:"omitempty,oneof=minimal card flip"`

	// type == "lead-form"
	FormFields    []string `json:"formFields,omitempty" validate:"dive,oneof=name email phone message"`
	FormProvider  string   `json:"formProvider,omitempty" validate:"omitempty,oneof=formsubmit web3forms"`
	FormEmail     string   `json:"formEmail,omitempty" validate:"omitempty,email"`
	FormAccessKey string   `json:"formAccessKey,omitempty"`
	FormCta       string   `json:"formCta,omitempty" validate:"max=100"`
}

// ActionConfig describes a WhatsApp template form: the viewer fills the
// fields and the template placeholders are substituted into the message.
type ActionConfig struct {
	WhatsAppNumber  string        `json:"whatsappNumber"`
	MessageTemplate string        `json:"messageTemplate"`
	Fields          []ActionField `json:"fields" validate:"dive"`
}

// ActionField is one input in an action form.
type ActionField struct {
	Label    string   `json:"label" validate:"required,max=50"`
	Type     string   `json:"type" validate:"oneof=text date select"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// PortfolioImage is one entry in a portfolio grid. Src is either a data
// URL or, before asset inlining, a local file path or glob.
type PortfolioImage struct {
	Src     string `json:"src" validate:"required"`
	Caption string `json:"caption,omitempty" validate:"max=200"`
}

// ThemeColors are the five required page colors, in hex notation.
type ThemeColors struct {
	Background     string `json:"background" validate:"required,hexcolor"`
	CardBackground string `json:"cardBackground" validate:"required,hexcolor"`
	Text           string `json:"text" validate:"required,hexcolor"`
	Accent         string `json:"accent" validate:"required,hexcolor"`
	LinkHover      string `json:"linkHover" validate:"required,hexcolor"`
}

// ThemeConfig holds the visual configuration.
type ThemeConfig struct {
	Preset            string      `json:"preset"`
	Mode              string      `json:"mode" validate:"oneof=light dark system"`
	Colors            ThemeColors `json:"colors"`
	Font              string      `json:"font"`
	ButtonStyle       string      `json:"buttonStyle" validate:"oneof=rounded pill square outline"`
	Animation         string      `json:"animation" validate:"oneof=none fade-up slide-in scale"`
	BackgroundPattern string      `json:"backgroundPattern" validate:"oneof=none dots grid gradient noise"`
	ThemeEffect       string      `json:"themeEffect,omitempty" validate:"omitempty,oneof=glassmorphism brutalism neon-glow paper retrowave"`
}

// Testimonial is one visitor quote. Only entries with both a name and a
// text are rendered.
type Testimonial struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"max=50"`
	Text   string `json:"text" validate:"max=300"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// HubTab groups links into a named tab. Once any tab exists, membership is
// strict: a link referenced by no tab is not rendered on any tab.
type HubTab struct {
	ID      string   `json:"id" validate:"required"`
	Label   string   `json:"label" validate:"required,max=30"`
	LinkIDs []string `json:"linkIds"`
}

// SeoConfig holds head metadata. Empty fields fall back to profile values
// at render time.
type SeoConfig struct {
	Title       string `json:"title" validate:"max=100"`
	Description string `json:"description" validate:"max=200"`
	OgImage     string `json:"ogImage,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
}

// AppSettings are flat page-level switches.
type AppSettings struct {
	ShowFooter  bool   `json:"showFooter"`
	FooterText  string `json:"footerText" validate:"max=100"`
	AnalyticsID string `json:"analyticsId,omitempty"`
	Locale      string `json:"locale" validate:"oneof=en id"`
	CustomCSS   string `json:"customCSS,omitempty" validate:"max=5000"`
}

// Valid reports whether a testimonial has enough content to render.
func (t Testimonial) Valid() bool {
	return t.Name != "" && t.Text != ""
}

// IsVisible reports whether the link renders at all. Scheduling bounds are
// evaluated in the exported page, not here; a disabled link is excluded
// from the output entirely.
func (l LinkItem) IsVisible() bool {
	return l.Enabled
}

// EffectiveType normalizes an absent tag to the plain-link variant.
func (l LinkItem) EffectiveType() BlockType {
	if l.Type == "" {
		return BlockLink
	}
	return l.Type
}
