package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/config"
	"github.com/trustification/spog-ui-e2e/internal/util"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
	"github.com/trustification/spog-ui-e2e/pkg/ingest"
	"github.com/trustification/spog-ui-e2e/pkg/spog"
	"github.com/trustification/spog-ui-e2e/pkg/sso"
)

var flagKeys = config.FlagKeys{
	"fixtures":      "fixtures.directory",
	"fail-on-error": "runner.failOnImportError",
	"log-level":     "logLevel",
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		configFile string
		wait       bool
	)

	cmd := &cobra.Command{
		Use:   "spog-import",
		Short: "Upload the e2e fixtures to the advisory and SBOM services",
		Long: `Upload every advisory and SBOM fixture, print a summary and optionally
wait for the documents to be indexed.

Upload failures are reported but only make the command fail with --fail-on-error.

	Examples:
	  spog-import --fixtures test/e2e/fixtures
	  spog-import --config e2e.yaml --wait --fail-on-error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile, wait)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional YAML or JSON configuration file")
	cmd.Flags().String("log-level", "", "log level, overrides logLevel")
	cmd.Flags().StringP("fixtures", "f", "", "fixtures directory holding advisories/ and sboms/")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for indexing after the upload")
	cmd.Flags().Bool("fail-on-error", false, "exit non-zero when any fixture failed to upload")

	return cmd
}

// loadConfig resolves the configuration with the set flags on top. Without
// wait the indexing wait is skipped entirely.
func loadConfig(cmd *cobra.Command, configFile string, wait bool) (*config.Configuration, error) {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags(), flagKeys); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}

	if !wait {
		cfg.Runner.WithOptions(
			config.WithPollIndex(false),
			config.WithIndexWait(0),
			config.WithInteractiveIndexWait(0),
		)
	}

	return cfg, nil
}

func run(ctx context.Context, cfg *config.Configuration) error {
	logger, err := util.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return err
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		zap.S().Errorw("invalid configuration", "error", err)
		return err
	}
	zap.S().Debugw("configuration loaded", cfg.DebugFields()...)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens := sso.NewClient(cfg.SSO.BaseURL, cfg.SSO.Realm, cfg.SSO.ClientID, cfg.SSO.ClientSecret)
	imp := importer.NewImporter(
		tokens,
		ingest.NewClient(cfg.Services.AdvisoryURL),
		ingest.NewClient(cfg.Services.SBOMURL),
		cfg.Fixtures,
	)
	hook := importer.NewHook(imp, tokens, cfg.Runner,
		importer.WithSearcher(spog.NewClient(cfg.Services.SpogAPIURL, nil)),
	)

	if _, err := hook.Run(ctx); err != nil {
		zap.S().Errorw("import failed", "error", err)
		return err
	}
	return nil
}
