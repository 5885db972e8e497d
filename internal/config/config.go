package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/trustification/spog-ui-e2e/internal/models"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration UI SSO Services Fixtures Runner

const EnvPrefix = "SPOG"

const (
	InfraModeExternal = "external"
	InfraModeLocal    = "local"
)

type Configuration struct {
	UI        UI       `mapstructure:"ui" debugmap:"visible"`
	SSO       SSO      `mapstructure:"sso" debugmap:"visible"`
	Services  Services `mapstructure:"services" debugmap:"visible"`
	Fixtures  Fixtures `mapstructure:"fixtures" debugmap:"visible"`
	Runner    Runner   `mapstructure:"runner" debugmap:"visible"`
	InfraMode string   `mapstructure:"infraMode" debugmap:"visible" default:"external"`
	LogFormat string   `mapstructure:"logFormat" debugmap:"visible" default:"console"`
	LogLevel  string   `mapstructure:"logLevel" debugmap:"visible" default:"debug"`
}

// UI is the application under test and the user logging into it.
type UI struct {
	URL      string `mapstructure:"url" debugmap:"visible" default:"http://localhost:8084"`
	Username string `mapstructure:"username" debugmap:"visible" default:"admin"`
	Password string `mapstructure:"password" debugmap:"sensitive" default:"admin123456"`
}

type SSO struct {
	BaseURL      string `mapstructure:"url" debugmap:"visible" default:"http://localhost:8090"`
	Realm        string `mapstructure:"realm" debugmap:"visible" default:"chicken"`
	ClientID     string `mapstructure:"clientId" debugmap:"visible" default:"walker"`
	ClientSecret string `mapstructure:"clientSecret" debugmap:"sensitive" default:"ZVzq9AMOVUdMY1lSohpx1jI3aW56QDPS"`
}

type Services struct {
	AdvisoryURL string `mapstructure:"advisoryUrl" debugmap:"visible" default:"http://127.0.0.1:8081"`
	SBOMURL     string `mapstructure:"sbomUrl" debugmap:"visible" default:"http://127.0.0.1:8082"`
	SpogAPIURL  string `mapstructure:"spogApiUrl" debugmap:"visible" default:"http://127.0.0.1:8083"`
}

type Fixtures struct {
	Directory string `mapstructure:"directory" debugmap:"visible" default:"test/e2e/fixtures"`
	Workers   int    `mapstructure:"workers" debugmap:"visible" default:"8"`
}

// KindDirectory returns the sub-directory holding the fixtures of kind.
func (f Fixtures) KindDirectory(kind models.FixtureKind) string {
	return filepath.Join(f.Directory, kind.Directory())
}

func (f Fixtures) AdvisoriesDirectory() string {
	return f.KindDirectory(models.FixtureKindAdvisory)
}

func (f Fixtures) SBOMsDirectory() string {
	return f.KindDirectory(models.FixtureKindSBOM)
}

// Runner holds the knobs of the test run itself.
type Runner struct {
	Retries              int           `mapstructure:"retries" debugmap:"visible" default:"2"`
	ViewportWidth        int           `mapstructure:"viewportWidth" debugmap:"visible" default:"1366"`
	ViewportHeight       int           `mapstructure:"viewportHeight" debugmap:"visible" default:"768"`
	Interactive          bool          `mapstructure:"interactive" debugmap:"visible" default:"false"`
	InteractiveIndexWait time.Duration `mapstructure:"interactiveIndexWait" debugmap:"visible" default:"500ms"`
	IndexWait            time.Duration `mapstructure:"indexWait" debugmap:"visible" default:"10s"`
	TestIsolation        bool          `mapstructure:"testIsolation" debugmap:"visible" default:"false"`
	PollIndex            bool          `mapstructure:"pollIndex" debugmap:"visible" default:"false"`
	IndexTimeout         time.Duration `mapstructure:"indexTimeout" debugmap:"visible" default:"1m"`
	FailOnImportError    bool          `mapstructure:"failOnImportError" debugmap:"visible" default:"false"`
	ChromePath           string        `mapstructure:"chromePath" debugmap:"visible"`
	ScreenshotDir        string        `mapstructure:"screenshotDir" debugmap:"visible" default:"screenshots"`
}

// IndexingDelay is the pause applied after the import so the services can
// index the new documents. Non-interactive runs are assumed to be CI, where
// indexing is slower.
func (r Runner) IndexingDelay() time.Duration {
	if r.Interactive {
		return r.InteractiveIndexWait
	}
	return r.IndexWait
}

// keys bound to environment variables, e.g. ui.url -> SPOG_UI_URL
var envKeys = []string{
	"ui.url", "ui.username", "ui.password",
	"sso.url", "sso.realm", "sso.clientId", "sso.clientSecret",
	"services.advisoryUrl", "services.sbomUrl", "services.spogApiUrl",
	"fixtures.directory", "fixtures.workers",
	"runner.retries", "runner.viewportWidth", "runner.viewportHeight", "runner.interactive",
	"runner.interactiveIndexWait", "runner.indexWait", "runner.testIsolation",
	"runner.pollIndex", "runner.indexTimeout", "runner.failOnImportError", "runner.chromePath",
	"runner.screenshotDir",
	"infraMode", "logFormat", "logLevel",
}

// Load builds the configuration from defaults, an optional config file, the
// environment and the flags bound to v, in that order of precedence (lowest
// first).
func Load(v *viper.Viper, configFile string) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %q: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}

func (c Configuration) Validate() error {
	if c.InfraMode != InfraModeExternal && c.InfraMode != InfraModeLocal {
		return fmt.Errorf("invalid infra-mode %q: must be '%s' or '%s'", c.InfraMode, InfraModeExternal, InfraModeLocal)
	}
	for name, raw := range map[string]string{
		"ui url":       c.UI.URL,
		"sso url":      c.SSO.BaseURL,
		"advisory url": c.Services.AdvisoryURL,
		"sbom url":     c.Services.SBOMURL,
		"spog api url": c.Services.SpogAPIURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s %q must be absolute", name, raw)
		}
	}
	if c.SSO.Realm == "" {
		return errors.New("sso realm is empty")
	}
	if c.Fixtures.Workers < 1 {
		return fmt.Errorf("fixtures workers must be positive, got %d", c.Fixtures.Workers)
	}
	if c.Runner.ViewportWidth <= 0 || c.Runner.ViewportHeight <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Runner.ViewportWidth, c.Runner.ViewportHeight)
	}
	if c.Runner.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Runner.Retries)
	}
	if c.Runner.PollIndex && c.Runner.IndexTimeout <= 0 {
		return fmt.Errorf("index timeout must be positive when polling the index, got %s", c.Runner.IndexTimeout)
	}
	return nil
}

// DebugFields lays the section debug maps out as zap key/value pairs.
func (c Configuration) DebugFields() []any {
	return []any{
		"ui", c.UI.DebugMap(),
		"sso", c.SSO.DebugMap(),
		"services", c.Services.DebugMap(),
		"fixtures", c.Fixtures.DebugMap(),
		"runner", c.Runner.DebugMap(),
		"infraMode", c.InfraMode,
		"logFormat", c.LogFormat,
		"logLevel", c.LogLevel,
	}
}
