package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	"github.com/trustification/spog-ui-e2e/pkg/spog"
)

// TokenSource returns a fresh access token for every call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SpogSvc queries the SPOG API on behalf of the scenarios.
type SpogSvc struct {
	client *spog.Client
	tokens TokenSource
}

func NewSpogService(apiURL string, tokens TokenSource) *SpogSvc {
	zap.S().Named("spog").Debugw("initializing SPOG service", "url", apiURL)
	return &SpogSvc{
		client: spog.NewClient(apiURL, nil),
		tokens: tokens,
	}
}

// FindSBOM returns the SBOM whose id or name equals key.
func (s *SpogSvc) FindSBOM(ctx context.Context, key string) (*v1.SbomSummary, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.client.SearchSBOMs(ctx, token, key, 0, 100)
	if err != nil {
		return nil, err
	}
	for _, sbom := range res.Result {
		if sbom.ID == key || sbom.Name == key {
			return &sbom, nil
		}
	}

	return nil, fmt.Errorf("sbom %q not found", key)
}

// FindAdvisory returns the advisory whose id or title equals key.
func (s *SpogSvc) FindAdvisory(ctx context.Context, key string) (*v1.AdvisorySummary, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.client.SearchAdvisories(ctx, token, key, 0, 100)
	if err != nil {
		return nil, err
	}
	for _, adv := range res.Result {
		if adv.ID == key || adv.Title == key {
			return &adv, nil
		}
	}

	return nil, fmt.Errorf("advisory %q not found", key)
}
