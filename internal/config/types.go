package config

// Config is the top-level docnav configuration, corresponding to .docnav.yml.
type Config struct {
	DocsDir string        `yaml:"docs_dir" koanf:"docs_dir"`
	Output  string        `yaml:"output" koanf:"output"`
	Sidebar SidebarConfig `yaml:"sidebar" koanf:"sidebar"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
}

// SidebarConfig controls how the docs directory is scanned.
type SidebarConfig struct {
	Categories     []string `yaml:"categories" koanf:"categories"`
	Extension      string   `yaml:"extension" koanf:"extension"`
	IndexFile      string   `yaml:"index_file" koanf:"index_file"`
	HomeLabel      string   `yaml:"home_label" koanf:"home_label"`
	Sort           string   `yaml:"sort" koanf:"sort"`
	Titles         string   `yaml:"titles" koanf:"titles"`
	ExpandDepth    int      `yaml:"expand_depth" koanf:"expand_depth"`
	Exclude        []string `yaml:"exclude" koanf:"exclude"`
	NormalizeNames bool     `yaml:"normalize_names" koanf:"normalize_names"`
}

// SiteConfig is the static part of the site framework configuration.
type SiteConfig struct {
	Title       string       `yaml:"title" koanf:"title"`
	Description string       `yaml:"description" koanf:"description"`
	Base        string       `yaml:"base" koanf:"base"`
	Lang        string       `yaml:"lang" koanf:"lang"`
	Logo        string       `yaml:"logo" koanf:"logo"`
	Appearance  string       `yaml:"appearance" koanf:"appearance"`
	LastUpdated bool         `yaml:"last_updated" koanf:"last_updated"`
	Math        bool         `yaml:"math" koanf:"math"`
	Head        []HeadTag    `yaml:"head" koanf:"head"`
	Nav         []NavLink    `yaml:"nav" koanf:"nav"`
	SocialLinks []SocialLink `yaml:"social_links" koanf:"social_links"`
	Footer      Footer       `yaml:"footer" koanf:"footer"`
	EditLink    EditLink     `yaml:"edit_link" koanf:"edit_link"`
	Outline     Outline      `yaml:"outline" koanf:"outline"`
	Search      Search       `yaml:"search" koanf:"search"`
	Labels      Labels       `yaml:"labels" koanf:"labels"`
	NotFound    NotFound     `yaml:"not_found" koanf:"not_found"`
	DevServer   DevServer    `yaml:"dev_server" koanf:"dev_server"`
	Build       BuildConfig  `yaml:"build" koanf:"build"`
}

// HeadTag is one element injected into the page <head>.
type HeadTag struct {
	Tag   string            `yaml:"tag" koanf:"tag"`
	Attrs map[string]string `yaml:"attrs" koanf:"attrs"`
}

type NavLink struct {
	Text string `yaml:"text" koanf:"text" json:"text"`
	Link string `yaml:"link" koanf:"link" json:"link"`
}

type SocialLink struct {
	Icon string `yaml:"icon" koanf:"icon" json:"icon"`
	Link string `yaml:"link" koanf:"link" json:"link"`
}

type Footer struct {
	Message   string `yaml:"message" koanf:"message"`
	Copyright string `yaml:"copyright" koanf:"copyright"`
}

type EditLink struct {
	Pattern string `yaml:"pattern" koanf:"pattern"`
	Text    string `yaml:"text" koanf:"text"`
}

type Outline struct {
	Levels []int  `yaml:"levels" koanf:"levels"`
	Label  string `yaml:"label" koanf:"label"`
}

// Search configures the framework's built-in local search.
type Search struct {
	Provider         string `yaml:"provider" koanf:"provider"`
	DetailedView     bool   `yaml:"detailed_view" koanf:"detailed_view"`
	ButtonText       string `yaml:"button_text" koanf:"button_text"`
	NoResultsText    string `yaml:"no_results_text" koanf:"no_results_text"`
	ResetButtonTitle string `yaml:"reset_button_title" koanf:"reset_button_title"`
	SelectText       string `yaml:"select_text" koanf:"select_text"`
	NavigateText     string `yaml:"navigate_text" koanf:"navigate_text"`
	CloseText        string `yaml:"close_text" koanf:"close_text"`
}

// Labels holds localized UI strings.
type Labels struct {
	Prev                 string `yaml:"prev" koanf:"prev"`
	Next                 string `yaml:"next" koanf:"next"`
	ReturnToTop          string `yaml:"return_to_top" koanf:"return_to_top"`
	SidebarMenu          string `yaml:"sidebar_menu" koanf:"sidebar_menu"`
	DarkModeSwitch       string `yaml:"dark_mode_switch" koanf:"dark_mode_switch"`
	LightModeSwitchTitle string `yaml:"light_mode_switch_title" koanf:"light_mode_switch_title"`
	DarkModeSwitchTitle  string `yaml:"dark_mode_switch_title" koanf:"dark_mode_switch_title"`
	LastUpdated          string `yaml:"last_updated" koanf:"last_updated"`
	Home                 string `yaml:"home" koanf:"home"`
}

type NotFound struct {
	Title     string `yaml:"title" koanf:"title"`
	Quote     string `yaml:"quote" koanf:"quote"`
	LinkLabel string `yaml:"link_label" koanf:"link_label"`
	LinkText  string `yaml:"link_text" koanf:"link_text"`
}

// DevServer is passed through to the framework's dev server.
type DevServer struct {
	Port int  `yaml:"port" koanf:"port"`
	Host bool `yaml:"host" koanf:"host"` // listen on all interfaces
}

type BuildConfig struct {
	Minify                string `yaml:"minify" koanf:"minify"`
	ChunkSizeWarningLimit int    `yaml:"chunk_size_warning_limit" koanf:"chunk_size_warning_limit"`
}
