package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Options tunes the browser and the fixed pauses of the helpers.
type Options struct {
	Headless       bool
	ExecPath       string
	ViewportWidth  int
	ViewportHeight int

	Timeout           time.Duration
	VisitTimeout      time.Duration
	RowTimeout        time.Duration
	EmptyStateTimeout time.Duration

	InputPause  time.Duration
	ClickPause  time.Duration
	FilterPause time.Duration
	LoginPause  time.Duration
}

func DefaultOptions() Options {
	return Options{
		Headless:          true,
		ViewportWidth:     1366,
		ViewportHeight:    768,
		Timeout:           120 * time.Second,
		VisitTimeout:      120 * time.Second,
		RowTimeout:        120 * time.Second,
		EmptyStateTimeout: 5 * time.Second,
		InputPause:        200 * time.Millisecond,
		ClickPause:        time.Second,
		FilterPause:       4 * time.Second,
		LoginPause:        5 * time.Second,
	}
}

// Session is one browser tab. Helpers are not safe for concurrent use.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opts        Options
	log         *zap.SugaredLogger
}

// NewSession starts a browser and opens a tab sized to the configured
// viewport. Close must be called to stop the browser.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	log := zap.S().Named("browser")

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(opts.ViewportWidth, opts.ViewportHeight),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Debugf), chromedp.WithErrorf(log.Errorf))

	if err := chromedp.Run(tabCtx, chromedp.EmulateViewport(int64(opts.ViewportWidth), int64(opts.ViewportHeight))); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	log.Infow("browser started", "headless", opts.Headless, "viewport", fmt.Sprintf("%dx%d", opts.ViewportWidth, opts.ViewportHeight))

	return &Session{
		ctx:         tabCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
		opts:        opts,
		log:         log,
	}, nil
}

func (s *Session) Close() {
	s.cancel()
	s.allocCancel()
	s.log.Debug("browser stopped")
}

// Context is the tab context, for callers running their own chromedp actions.
func (s *Session) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// pause waits d unless the session is closed.
func (s *Session) pause(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return chromedp.Run(s.ctx, chromedp.Sleep(d))
}

// Visit navigates to url and waits for the document body.
func (s *Session) Visit(url string) error {
	s.log.Debugw("visit", "url", url)
	if err := s.run(s.opts.VisitTimeout, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to visit %s: %w", url, err)
	}
	return nil
}

func (s *Session) Reload() error {
	if err := s.run(s.opts.VisitTimeout, chromedp.Reload(), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to reload page: %w", err)
	}
	return nil
}

// ClearSession drops cookies and site storage so the next Login starts
// signed out.
func (s *Session) ClearSession() error {
	err := s.run(s.opts.Timeout,
		network.ClearBrowserCookies(),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var origin string
			if err := chromedp.Evaluate(`window.location.origin`, &origin).Do(ctx); err != nil {
				return err
			}
			if origin == "" || origin == "null" {
				return nil
			}
			return storage.ClearDataForOrigin(origin, "all").Do(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to clear browser session: %w", err)
	}
	return nil
}

// Screenshot captures the viewport as PNG.
func (s *Session) Screenshot() ([]byte, error) {
	var buf []byte
	if err := s.run(s.opts.Timeout, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

var errNoChrome = errors.New("no chrome binary found")

// FindChrome returns the first Chrome or Chromium binary found, preferring
// the given path.
func FindChrome(preferred string) (string, error) {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred, nil
		}
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errNoChrome
}
