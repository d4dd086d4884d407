package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docnav/internal/walker"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: DOCNAV_SIDEBAR__SORT=name sets sidebar.sort.
const EnvPrefix = "DOCNAV_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCNAV_*). A .env file next to the config
// file is loaded into the environment first; variables already set win.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// ZeroFields makes lists from the file replace the defaults instead of
	// being merged element by element into them.
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           cfg,
			WeaklyTypedInput: true,
			ZeroFields:       true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSortModes = map[string]bool{"": true, "none": true, "name": true}

var validTitleModes = map[string]bool{"": true, "filename": true, "heading": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}

	s := c.Sidebar
	if len(s.Categories) == 0 {
		return fmt.Errorf("sidebar.categories must list at least one directory")
	}
	seen := make(map[string]bool, len(s.Categories))
	for _, name := range s.Categories {
		if err := validateCategory(name); err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = true
	}

	if len(s.Extension) < 2 || !strings.HasPrefix(s.Extension, ".") {
		return fmt.Errorf("invalid sidebar.extension %q: must start with a dot", s.Extension)
	}
	if s.IndexFile == "" || !strings.HasSuffix(s.IndexFile, s.Extension) {
		return fmt.Errorf("invalid sidebar.index_file %q: must end with %s", s.IndexFile, s.Extension)
	}
	if !validSortModes[s.Sort] {
		return fmt.Errorf("invalid sidebar.sort %q: must be one of none, name", s.Sort)
	}
	if !validTitleModes[s.Titles] {
		return fmt.Errorf("invalid sidebar.titles %q: must be one of filename, heading", s.Titles)
	}
	if s.ExpandDepth < 0 {
		return fmt.Errorf("sidebar.expand_depth must be non-negative")
	}
	if _, err := walker.NewMatcher(s.Exclude); err != nil {
		return fmt.Errorf("sidebar.exclude: %w", err)
	}

	if p := c.Site.DevServer.Port; p < 0 || p > 65535 {
		return fmt.Errorf("invalid site.dev_server.port %d", p)
	}
	if c.Site.Build.ChunkSizeWarningLimit < 0 {
		return fmt.Errorf("site.build.chunk_size_warning_limit must be non-negative")
	}
	for _, h := range c.Site.Head {
		if h.Tag == "" {
			return fmt.Errorf("site.head entries need a tag")
		}
	}

	return nil
}

func validateCategory(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("category names must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("invalid category %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid category %q: must be a single directory name", name)
	}
	return nil
}
