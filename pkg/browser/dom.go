package browser

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

const (
	pollInterval = 100 * time.Millisecond
	markedNode   = "[data-e2e-target]"
)

// Page functions run through chromedp.PollFunction. They return true once
// their condition holds.
const (
	// the last match in document order is the deepest one
	clickByTextJS = `(sel, text) => {
	const matches = Array.from(document.querySelectorAll(sel)).filter(e => e.textContent.includes(text));
	if (matches.length === 0) return false;
	matches[matches.length - 1].click();
	return true;
}`

	markByTextJS = `(sel, text) => {
	document.querySelectorAll("[data-e2e-target]").forEach(e => e.removeAttribute("data-e2e-target"));
	const matches = Array.from(document.querySelectorAll(sel)).filter(e => e.textContent.includes(text));
	if (matches.length === 0) return false;
	matches[matches.length - 1].setAttribute("data-e2e-target", "");
	return true;
}`

	checkInGroupJS = `(group, label, type) => {
	const div = Array.from(document.querySelectorAll(group)).find(e => e.textContent.includes(label));
	if (!div) return false;
	const input = div.querySelector("input[type='" + type + "']");
	if (!input) return false;
	if (!input.checked) input.click();
	return true;
}`

	headingContainsJS = `(text) => Array.from(document.querySelectorAll("h1")).some(h => h.textContent.includes(text))`

	bodyContainsJS = `(text) => !!document.body && document.body.textContent.includes(text)`

	cellContainsJS = `(sel, text) => Array.from(document.querySelectorAll(sel)).some(e => e.textContent.includes(text))`

	forceClickJS = `function() { this.click(); }`
)

type clickOptions struct {
	forced bool
}

type ClickOption func(*clickOptions)

// Unforced clicks with the mouse and requires the element to be visible.
func Unforced() ClickOption {
	return func(o *clickOptions) {
		o.forced = false
	}
}

func newClickOptions(opts []ClickOption) clickOptions {
	o := clickOptions{forced: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// InputText clicks the field, clears it, pauses, clears it again and types
// text. A trailing "\r" presses Enter.
func (s *Session) InputText(sel, text string) error {
	err := s.run(s.opts.Timeout,
		chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible),
		chromedp.Clear(sel, chromedp.ByQuery),
		chromedp.Sleep(s.opts.InputPause),
		chromedp.Clear(sel, chromedp.ByQuery),
		chromedp.SendKeys(sel, text, chromedp.ByQuery),
	)
	if err != nil {
		return notFound(sel, "", err)
	}
	return nil
}

// Click clicks the first element matching sel. By default the click is
// dispatched from script so hidden or covered elements still receive it.
func (s *Session) Click(sel string, opts ...ClickOption) error {
	o := newClickOptions(opts)

	var action chromedp.Action
	if o.forced {
		action = chromedp.QueryAfter(sel, func(ctx context.Context, _ runtime.ExecutionContextID, nodes ...*cdp.Node) error {
			if len(nodes) == 0 {
				return errors.New("no node")
			}
			return chromedp.CallFunctionOnNode(ctx, nodes[0], forceClickJS, nil)
		}, chromedp.ByQuery, chromedp.NodeReady)
	} else {
		action = chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible)
	}

	if err := s.run(s.opts.Timeout, action); err != nil {
		return notFound(sel, "", err)
	}
	return nil
}

// ClickByText clicks the deepest element matching sel whose text contains
// text, then pauses.
func (s *Session) ClickByText(sel, text string, opts ...ClickOption) error {
	o := newClickOptions(opts)
	s.log.Debugw("click by text", "selector", sel, "text", text)

	if o.forced {
		if err := s.poll(s.opts.Timeout, clickByTextJS, sel, text); err != nil {
			return notFound(sel, text, err)
		}
		return s.pause(s.opts.ClickPause)
	}

	// mark the match so the mouse click can target it
	if err := s.poll(s.opts.Timeout, markByTextJS, sel, text); err != nil {
		return notFound(sel, text, err)
	}
	if err := s.Click(markedNode, Unforced()); err != nil {
		return err
	}
	return s.pause(s.opts.ClickPause)
}

// ApplySearchFilterText types text into the toolbar search and submits it.
func (s *Session) ApplySearchFilterText(text string) error {
	if err := s.InputText(SearchFilterInput, text+"\r"); err != nil {
		return err
	}
	return s.pause(s.opts.FilterPause)
}

// ApplyCheckboxFilter checks the checkbox labelled label.
func (s *Session) ApplyCheckboxFilter(label string) error {
	if err := s.poll(s.opts.Timeout, checkInGroupJS, CheckboxGroup, label, "checkbox"); err != nil {
		return notFound(CheckboxGroup, label, err)
	}
	return s.pause(s.opts.FilterPause)
}

// ApplyRadioButtonFilter selects the radio button labelled label.
func (s *Session) ApplyRadioButtonFilter(label string) error {
	if err := s.poll(s.opts.Timeout, checkInGroupJS, RadioGroup, label, "radio"); err != nil {
		return notFound(RadioGroup, label, err)
	}
	return s.pause(s.opts.FilterPause)
}

// ExistsRow waits for the result region. When it renders the empty state
// nothing else is checked; otherwise some table cell must contain value.
func (s *Session) ExistsRow(value string) error {
	var (
		class string
		ok    bool
	)
	err := s.run(s.opts.EmptyStateTimeout,
		chromedp.WaitReady(MainPageTable, chromedp.ByQuery),
		chromedp.AttributeValue(MainPageTable, "class", &class, &ok, chromedp.ByQuery),
	)
	if err != nil {
		return notFound(MainPageTable, "", err)
	}

	if strings.Contains(" "+class+" ", " "+EmptyStateClass+" ") {
		s.log.Debugw("empty result region, row check skipped", "value", value)
		return nil
	}

	if err := s.poll(s.opts.RowTimeout, cellContainsJS, TableCell, value); err != nil {
		return notFound(TableCell, value, err)
	}
	return nil
}

// ExpectHeading waits for an h1 containing text.
func (s *Session) ExpectHeading(text string) error {
	if err := s.poll(s.opts.Timeout, headingContainsJS, text); err != nil {
		return notFound(Heading, text, err)
	}
	return nil
}

// ContainsText waits for the page text to contain text.
func (s *Session) ContainsText(text string) error {
	if err := s.poll(s.opts.Timeout, bodyContainsJS, text); err != nil {
		return notFound("body", text, err)
	}
	return nil
}

// HeadingText returns the text of the first h1.
func (s *Session) HeadingText() (string, error) {
	var text string
	if err := s.run(s.opts.Timeout, chromedp.TextContent(Heading, &text, chromedp.ByQuery)); err != nil {
		return "", notFound(Heading, "", err)
	}
	return text, nil
}

// poll waits for fn to return true. Evaluation errors, such as the page
// navigating away mid-poll, are retried until the timeout.
func (s *Session) poll(timeout time.Duration, fn string, args ...any) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	deadline, _ := ctx.Deadline()

	_, err := backoff.Retry(ctx, func() (bool, error) {
		var ok bool
		err := chromedp.Run(ctx, chromedp.PollFunction(fn, &ok,
			chromedp.WithPollingArgs(args...),
			chromedp.WithPollingTimeout(time.Until(deadline)),
			chromedp.WithPollingInterval(pollInterval),
		))
		switch {
		case err == nil:
			return ok, nil
		case errors.Is(err, chromedp.ErrPollingTimeout), ctx.Err() != nil:
			return false, backoff.Permanent(err)
		default:
			return false, err
		}
	}, backoff.WithBackOff(backoff.NewConstantBackOff(pollInterval)), backoff.WithMaxElapsedTime(timeout))

	return err
}

func notFound(sel, text string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return srvErrors.NewElementNotFoundError(sel, text, err)
}
