package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/config"
	"github.com/trustification/spog-ui-e2e/internal/models"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
	"github.com/trustification/spog-ui-e2e/pkg/scheduler"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type AdvisoryUploader interface {
	UploadAdvisory(ctx context.Context, token, fixture string, doc []byte) error
}

type SBOMUploader interface {
	UploadSBOM(ctx context.Context, token, id string, doc []byte) error
}

type uploadFn func(ctx context.Context, token string, f models.FixtureFile) error

// Importer pushes the fixture documents to the ingestion services.
// One access token is requested per batch and shared by its uploads.
type Importer struct {
	tokens     TokenSource
	advisories AdvisoryUploader
	sboms      SBOMUploader
	fixtures   config.Fixtures
}

func NewImporter(tokens TokenSource, advisories AdvisoryUploader, sboms SBOMUploader, fixtures config.Fixtures) *Importer {
	return &Importer{
		tokens:     tokens,
		advisories: advisories,
		sboms:      sboms,
		fixtures:   fixtures,
	}
}

func (i *Importer) ImportAdvisories(ctx context.Context) *models.BatchReport {
	return i.importBatch(ctx, models.FixtureKindAdvisory, i.fixtures.AdvisoriesDirectory(), func(ctx context.Context, token string, f models.FixtureFile) error {
		return i.advisories.UploadAdvisory(ctx, token, f.Filename, f.Content)
	})
}

// ImportSBOMs uploads every SBOM fixture using its filename as id.
func (i *Importer) ImportSBOMs(ctx context.Context) *models.BatchReport {
	return i.importBatch(ctx, models.FixtureKindSBOM, i.fixtures.SBOMsDirectory(), func(ctx context.Context, token string, f models.FixtureFile) error {
		return i.sboms.UploadSBOM(ctx, token, f.Filename, f.Content)
	})
}

// ImportAll runs both batches concurrently and returns the advisory report
// followed by the SBOM report.
func (i *Importer) ImportAll(ctx context.Context) []*models.BatchReport {
	reports := make([]*models.BatchReport, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		reports[0] = i.ImportAdvisories(ctx)
	}()
	go func() {
		defer wg.Done()
		reports[1] = i.ImportSBOMs(ctx)
	}()
	wg.Wait()

	return reports
}

func (i *Importer) importBatch(ctx context.Context, kind models.FixtureKind, dir string, upload uploadFn) *models.BatchReport {
	log := zap.S().Named("importer")
	report := models.NewBatchReport(kind)
	defer func() {
		report.Duration = time.Since(report.StartedAt)
		logReport(log, report)
	}()

	fixtures, err := ReadFixtures(dir, kind)
	if err != nil {
		return report.Fail(models.FailureRead, err)
	}

	token, err := i.tokens.Token(ctx)
	if err != nil {
		return report.Fail(models.FailureToken, err)
	}

	workers := i.fixtures.Workers
	if workers > len(fixtures) {
		workers = len(fixtures)
	}
	sched := scheduler.NewScheduler[models.UploadResult](workers)
	defer sched.Close()

	futures := make([]*scheduler.Future[scheduler.Result[models.UploadResult]], 0, len(fixtures))
	for _, f := range fixtures {
		futures = append(futures, sched.AddWork(ctx, func(ctx context.Context) (models.UploadResult, error) {
			return uploadOne(ctx, token, f, upload), nil
		}))
	}

	for idx, r := range scheduler.Await(futures...) {
		result := r.Data
		if r.Err != nil {
			// the work never ran or panicked
			result = models.UploadResult{
				Fixture:     fixtures[idx].Filename,
				Kind:        kind,
				FailureKind: classify(r.Err),
				Err:         r.Err,
			}
		}
		report.Results = append(report.Results, result)
	}

	return report
}

func uploadOne(ctx context.Context, token string, f models.FixtureFile, upload uploadFn) models.UploadResult {
	start := time.Now()
	result := models.UploadResult{Fixture: f.Filename, Kind: f.Kind}

	if !json.Valid(f.Content) {
		result.FailureKind = models.FailureParse
		result.Err = fmt.Errorf("fixture %s is not valid JSON", f.Path)
		return result
	}

	if err := upload(ctx, token, f); err != nil {
		result.FailureKind = classify(err)
		result.Err = fmt.Errorf("failed to upload %s: %w", f.Filename, err)
	}
	result.Duration = time.Since(start)

	return result
}

func classify(err error) models.FailureKind {
	switch {
	case err == nil:
		return models.FailureNone
	case srvErrors.IsUnauthorizedError(err):
		return models.FailureUnauthorized
	case srvErrors.IsUploadRejectedError(err):
		return models.FailureRejected
	case srvErrors.IsTokenError(err):
		return models.FailureToken
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.FailureCanceled
	default:
		return models.FailureTransport
	}
}

func logReport(log *zap.SugaredLogger, report *models.BatchReport) {
	if report.Err != nil {
		log.Errorw(fmt.Sprintf("%s import failed", report.Kind.Plural()), "reason", report.FailureKind, "error", report.Err)
		return
	}

	failed := report.Failed()
	if len(failed) == 0 {
		log.Infow(fmt.Sprintf("%s imported", report.Kind.Plural()), "count", len(report.Results), "duration", report.Duration)
		return
	}

	for _, r := range failed {
		log.Errorw("fixture upload failed", "kind", r.Kind, "fixture", r.Fixture, "reason", r.FailureKind, "error", r.Err)
	}
}
