package main

import (
	"flag"
	"log"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/config"
	"github.com/trustification/spog-ui-e2e/internal/util"
	"github.com/trustification/spog-ui-e2e/pkg/browser"
	"github.com/trustification/spog-ui-e2e/test/e2e/infra"
)

var (
	cfg          *config.Configuration
	infraManager infra.InfraManager
	// explicit login credentials, falling back to ui.username/ui.password
	loginCredentials browser.Credentials
)

var flagKeys = config.FlagKeys{
	"infra-mode":  "infraMode",
	"ui-url":      "ui.url",
	"fixtures":    "fixtures.directory",
	"interactive": "runner.interactive",
}

func main() {
	var (
		configFile  string
		labelFilter string
		explicit    browser.Credentials
	)
	flag.StringVar(&configFile, "config", "", "Optional YAML or JSON configuration file")
	flag.String("infra-mode", "", "Infrastructure mode: 'external' (deployed stack) or 'local' (in-process mock SSO and services)")
	flag.String("ui-url", "", "SPOG UI url")
	flag.StringVar(&explicit.Username, "username", "", "Login user, overrides ui.username")
	flag.StringVar(&explicit.Password, "password", "", "Login password, overrides ui.password")
	flag.String("fixtures", "", "Fixtures directory holding advisories/ and sboms/")
	flag.Bool("interactive", false, "Visible browser and short indexing wait")
	flag.StringVar(&labelFilter, "label-filter", "", "Run only the specs matching this label filter (e.g. 'ui', 'import')")
	flag.Parse()

	v := viper.New()
	if err := config.BindFlags(v, config.FromGoFlags(flag.CommandLine), flagKeys); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	var err error
	cfg, err = config.Load(v, configFile)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := util.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}
	zap.S().Infow("configuration loaded", cfg.DebugFields()...)

	loginCredentials = explicit.Or(browser.Credentials{Username: cfg.UI.Username, Password: cfg.UI.Password})

	switch cfg.InfraMode {
	case config.InfraModeLocal:
		infraManager = infra.NewLocalInfraManager(infra.Realm{
			Name:         cfg.SSO.Realm,
			ClientID:     cfg.SSO.ClientID,
			ClientSecret: cfg.SSO.ClientSecret,
		})
	case config.InfraModeExternal:
		infraManager = infra.NewExternalInfraManager(infra.Endpoints{
			SSO:         cfg.SSO.BaseURL,
			AdvisoryURL: cfg.Services.AdvisoryURL,
			SBOMURL:     cfg.Services.SBOMURL,
			SpogAPIURL:  cfg.Services.SpogAPIURL,
		})
	}

	suiteConfig, reporterConfig := GinkgoConfiguration()
	// a failed spec is attempted again up to runner.retries times
	suiteConfig.FlakeAttempts = cfg.Runner.Retries + 1
	if labelFilter != "" {
		suiteConfig.LabelFilter = labelFilter
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "SPOG UI E2E Suite", suiteConfig, reporterConfig) {
		os.Exit(1)
	}
}
