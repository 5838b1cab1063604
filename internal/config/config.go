// internal/config/config.go
//
// This package handles configuration and the .showroom directory structure.
// Every project that runs the showroom gets a .showroom/ folder created in
// its root holding config.yaml and logs/.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ShowroomDir is the name of the directory we create in each project.
	ShowroomDir = ".showroom"

	defaultAPIBaseURL = "http://127.0.0.1:8750"
)

const defaultSiteConfigYAML = `# showroom site configuration
version: 1

business:
  name: ASAP Food Trailer
  phone: "+12016453364"
  email: ffoodtruckandtrailerforsaleand@gmail.com
  city: Houston
  address: Houston, TX
  whatsapp: "12104607427"

api:
  base_url: http://127.0.0.1:8750

capabilities:
  native_lazy_images: false
  scroll_reveal: true
`

// Business identifies the dealership shown in the page chrome and footer.
type Business struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	City     string `yaml:"city"`
	Address  string `yaml:"address"`
	WhatsApp string `yaml:"whatsapp"`
}

// API points the live-stats fetcher and lead submission at the backend.
type API struct {
	BaseURL string `yaml:"base_url"`
}

// Capabilities toggles runtime features the page adapts to.
type Capabilities struct {
	// NativeLazyImages disables the lazy-image fallback when the runtime
	// already defers image loading on its own.
	NativeLazyImages bool `yaml:"native_lazy_images"`
	// ScrollReveal enables the reveal-on-scroll animator.
	ScrollReveal bool `yaml:"scroll_reveal"`
}

// SiteConfig models .showroom/config.yaml.
type SiteConfig struct {
	Version      int          `yaml:"version"`
	Business     Business     `yaml:"business"`
	API          API          `yaml:"api"`
	Capabilities Capabilities `yaml:"capabilities"`
}

// Config holds the runtime configuration for the showroom.
type Config struct {
	// ProjectDir is the directory the showroom was launched from.
	ProjectDir string

	// ShowroomProjectDir is ProjectDir/.showroom.
	ShowroomProjectDir string

	Site SiteConfig
}

// InitShowroomDir creates the .showroom directory structure in the given
// project directory. Called on startup before the TUI runs.
func InitShowroomDir(projectDir string) error {
	showroomDir := filepath.Join(projectDir, ShowroomDir)
	if err := os.MkdirAll(filepath.Join(showroomDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureSiteConfig(filepath.Join(showroomDir, "config.yaml"))
}

// NewConfig creates a Config populated from .showroom/config.yaml, falling
// back to built-in defaults when the file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		ShowroomProjectDir: filepath.Join(projectDir, ShowroomDir),
		Site:               defaultSiteConfig(),
	}
	if err := cfg.loadSiteConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.ShowroomProjectDir, "logs")
}

// SiteConfigPath returns the on-disk location for the site config file.
func (c *Config) SiteConfigPath() string {
	return filepath.Join(c.ShowroomProjectDir, "config.yaml")
}

// APIBaseURL returns the backend base URL for fleet stats and leads.
func (c *Config) APIBaseURL() string {
	return c.Site.API.BaseURL
}

func (c *Config) loadSiteConfig() error {
	path := c.SiteConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed SiteConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Site = parsed
	return nil
}

func defaultSiteConfig() SiteConfig {
	cfg := SiteConfig{Version: 1, Capabilities: Capabilities{ScrollReveal: true}}
	cfg.applyDefaults()
	return cfg
}

func (sc *SiteConfig) applyDefaults() {
	if sc.Version == 0 {
		sc.Version = 1
	}
	if strings.TrimSpace(sc.Business.Name) == "" {
		sc.Business.Name = "ASAP Food Trailer"
	}
	if strings.TrimSpace(sc.Business.Phone) == "" {
		sc.Business.Phone = "+12016453364"
	}
	if strings.TrimSpace(sc.Business.City) == "" {
		sc.Business.City = "Houston"
	}
	if strings.TrimSpace(sc.API.BaseURL) == "" {
		sc.API.BaseURL = defaultAPIBaseURL
	}
}

func (sc *SiteConfig) normalize() {
	sc.Business.Name = strings.TrimSpace(sc.Business.Name)
	sc.Business.Phone = strings.TrimSpace(sc.Business.Phone)
	sc.Business.Email = strings.TrimSpace(sc.Business.Email)
	sc.Business.City = strings.TrimSpace(sc.Business.City)
	sc.Business.Address = strings.TrimSpace(sc.Business.Address)
	sc.Business.WhatsApp = strings.TrimSpace(sc.Business.WhatsApp)
	sc.API.BaseURL = strings.TrimRight(strings.TrimSpace(sc.API.BaseURL), "/")
}

func (sc *SiteConfig) validate() error {
	if sc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if sc.Business.Name == "" {
		return fmt.Errorf("business.name is required")
	}
	if sc.API.BaseURL != "" {
		parsed, err := url.Parse(sc.API.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("api.base_url must be an absolute URL")
		}
	}
	return nil
}

func ensureSiteConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSiteConfigYAML), 0o644)
}
