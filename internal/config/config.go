package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/shinydex/internal/providers/pokemondb"
	"github.com/brogergvhs/shinydex/internal/shiny"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const DefaultOutput = "gen7_shiny_links_COMPLETE_FINAL.txt"

type Config struct {
	Output         string   `yaml:"output"`
	BaseURL        string   `yaml:"base_url"`
	ImageHost      string   `yaml:"image_host"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Exclude        []string `yaml:"exclude"`
	Debug          bool     `yaml:"debug"`
	Progress       bool     `yaml:"progress"`

	Cookie           string `yaml:"cookie"`
	CookieFile       string `yaml:"cookie_file"`
	UserAgent        string `yaml:"user_agent"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`
}

type Options struct {
	// Store defaults to DefaultStore().
	Store            *Store
	IgnoreConfig     bool
	Debug            bool
	Output           string
	BaseURL          string
	ImageHost        string
	TimeoutSeconds   int
	Progress         bool
	Cookie           string
	CookieFile       string
	UserAgent        string
	CloudflareBypass bool
}

func DefaultConfig() *Config {
	return &Config{
		Output:         DefaultOutput,
		BaseURL:        pokemondb.DefaultBaseURL,
		ImageHost:      shiny.DefaultImageHost,
		TimeoutSeconds: 10,
		Exclude:        []string{"wishiwashi"},
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged resolves the effective config: CLI options over the active
// profile over built-in defaults. The second return value says where the
// profile came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		if err := mergeConfig(cfg, opts); err != nil {
			return nil, "", err
		}
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	store := DefaultStore()
	if opts.Store != nil {
		store = *opts.Store
	}

	activePath, err := store.ActivePath()
	if errors.Is(err, ErrNoConfig) {
		cfg := DefaultConfig()
		if err := mergeConfig(cfg, opts); err != nil {
			return nil, "", err
		}
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	if err := mergeConfig(cfg, opts); err != nil {
		return nil, "", err
	}
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

// mergeConfig lays the non-zero CLI options over c. Boolean flags can only
// switch a setting on.
func mergeConfig(c *Config, o Options) error {
	override := Config{
		Output:           o.Output,
		BaseURL:          o.BaseURL,
		ImageHost:        o.ImageHost,
		TimeoutSeconds:   o.TimeoutSeconds,
		Debug:            o.Debug,
		Progress:         o.Progress,
		Cookie:           o.Cookie,
		CookieFile:       o.CookieFile,
		UserAgent:        o.UserAgent,
		CloudflareBypass: o.CloudflareBypass,
	}

	return mergo.Merge(c, override, mergo.WithOverride)
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.BaseURL == "" {
		c.BaseURL = pokemondb.DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.ImageHost == "" {
		c.ImageHost = shiny.DefaultImageHost
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	for i, e := range c.Exclude {
		c.Exclude[i] = strings.ToLower(strings.TrimSpace(e))
	}
}

// Print writes the settings that differ from zero values, one per line.
func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -output: %s\n", c.Output)
	fmt.Fprintf(w, " -base_url: %s\n", c.BaseURL)
	fmt.Fprintf(w, " -image_host: %s\n", c.ImageHost)
	fmt.Fprintf(w, " -timeout_seconds: %d\n", c.TimeoutSeconds)
	if len(c.Exclude) > 0 {
		fmt.Fprintf(w, " -exclude: %s\n", strings.Join(c.Exclude, ", "))
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.Progress {
		fmt.Fprintf(w, " -progress: %t\n", c.Progress)
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.CloudflareBypass {
		fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
}
