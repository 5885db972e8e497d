package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	"github.com/trustification/spog-ui-e2e/internal/config"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

type SBOMSearcher interface {
	SearchSBOMs(ctx context.Context, token, q string, offset, limit int) (*v1.SbomSearchResult, error)
}

// IndexingDelay returns the fixed pause applied after an import.
func IndexingDelay(interactive bool, r config.Runner) time.Duration {
	r.Interactive = interactive
	return r.IndexingDelay()
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PollIndexed searches the SPOG API until every name has a hit or maxElapsed
// has passed. A rejected token stops the poll immediately.
func PollIndexed(ctx context.Context, searcher SBOMSearcher, tokens TokenSource, names []string, maxElapsed time.Duration) error {
	log := zap.S().Named("importer")

	pending := make(map[string]struct{}, len(names))
	for _, n := range names {
		pending[n] = struct{}{}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		token, err := tokens.Token(ctx)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}

		for name := range pending {
			res, err := searcher.SearchSBOMs(ctx, token, name, 0, 10)
			if err != nil {
				if srvErrors.IsUnauthorizedError(err) {
					return struct{}{}, backoff.Permanent(err)
				}
				return struct{}{}, err
			}
			if containsName(res, name) {
				delete(pending, name)
			}
		}

		if len(pending) > 0 {
			log.Debugw("waiting for documents to be indexed", "pending", len(pending))
			return struct{}{}, fmt.Errorf("documents not indexed yet: %s", strings.Join(keys(pending), ", "))
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(maxElapsed))

	return err
}

func containsName(res *v1.SbomSearchResult, name string) bool {
	if res == nil {
		return false
	}
	for _, s := range res.Result {
		if s.Name == name || s.ID == name {
			return true
		}
	}
	return false
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
