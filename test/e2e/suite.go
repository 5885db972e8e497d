package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/models"
	"github.com/trustification/spog-ui-e2e/pkg/browser"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
	"github.com/trustification/spog-ui-e2e/pkg/ingest"
	"github.com/trustification/spog-ui-e2e/pkg/spog"
	"github.com/trustification/spog-ui-e2e/pkg/sso"
	"github.com/trustification/spog-ui-e2e/test/e2e/infra"
	"github.com/trustification/spog-ui-e2e/test/e2e/service"
)

const importTimeout = 5 * time.Minute

var (
	ssoClient     *sso.Client
	spogSvc       *service.SpogSvc
	importReports []*models.BatchReport
)

var _ = BeforeSuite(func() {
	Expect(infraManager.StartSSO()).To(Succeed())
	Expect(infraManager.StartServices()).To(Succeed())
	useEndpoints(infraManager.Endpoints())

	ssoClient = sso.NewClient(cfg.SSO.BaseURL, cfg.SSO.Realm, cfg.SSO.ClientID, cfg.SSO.ClientSecret)
	spogSvc = service.NewSpogService(cfg.Services.SpogAPIURL, ssoClient)

	imp := importer.NewImporter(
		ssoClient,
		ingest.NewClient(cfg.Services.AdvisoryURL),
		ingest.NewClient(cfg.Services.SBOMURL),
		cfg.Fixtures,
	)
	hook := importer.NewHook(imp, ssoClient, cfg.Runner,
		importer.WithSearcher(spog.NewClient(cfg.Services.SpogAPIURL, nil)),
		importer.WithOutput(GinkgoWriter),
	)

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	var err error
	importReports, err = hook.Run(ctx)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if err := infraManager.StopServices(); err != nil {
		zap.S().Warnw("failed to stop services", "error", err)
	}
	if err := infraManager.StopSSO(); err != nil {
		zap.S().Warnw("failed to stop SSO", "error", err)
	}
})

// useEndpoints rewrites the configured endpoints with the ones of the
// running infrastructure.
func useEndpoints(e infra.Endpoints) {
	if e.SSO != "" {
		cfg.SSO.BaseURL = e.SSO
	}
	if e.AdvisoryURL != "" {
		cfg.Services.AdvisoryURL = e.AdvisoryURL
	}
	if e.SBOMURL != "" {
		cfg.Services.SBOMURL = e.SBOMURL
	}
	if e.SpogAPIURL != "" {
		cfg.Services.SpogAPIURL = e.SpogAPIURL
	}
}

// startBrowser opens a browser session sized and paced from the runner
// configuration. The session is closed when the calling container ends.
func startBrowser() *browser.Session {
	opts := browser.DefaultOptions()
	opts.Headless = !cfg.Runner.Interactive
	opts.ViewportWidth = cfg.Runner.ViewportWidth
	opts.ViewportHeight = cfg.Runner.ViewportHeight
	if path, err := browser.FindChrome(cfg.Runner.ChromePath); err == nil {
		opts.ExecPath = path
	}

	s, err := browser.NewSession(context.Background(), opts)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(s.Close)

	return s
}

// screenshotOnFailure saves the page of a failed spec under the screenshot
// directory and attaches the file path to the spec report.
func screenshotOnFailure(s *browser.Session) {
	report := CurrentSpecReport()
	if !report.Failed() {
		return
	}

	png, err := s.Screenshot()
	if err != nil {
		zap.S().Warnw("failed to capture screenshot", "spec", report.FullText(), "error", err)
		return
	}
	if err := os.MkdirAll(cfg.Runner.ScreenshotDir, 0o755); err != nil {
		zap.S().Warnw("failed to create screenshot directory", "dir", cfg.Runner.ScreenshotDir, "error", err)
		return
	}

	name := fmt.Sprintf("%s-%d.png", screenshotName(report.FullText()), report.NumAttempts)
	path := filepath.Join(cfg.Runner.ScreenshotDir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		zap.S().Warnw("failed to write screenshot", "path", path, "error", err)
		return
	}

	AddReportEntry("screenshot", path)
}

// screenshotName turns a spec text into a file name.
func screenshotName(text string) string {
	return strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, text), "_")
}
