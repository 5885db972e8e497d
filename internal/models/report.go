package models

import (
	"errors"
	"time"
)

// FailureKind classifies why a fixture did not reach its service.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureRead         FailureKind = "read"
	FailureParse        FailureKind = "parse"
	FailureToken        FailureKind = "token"
	FailureRejected     FailureKind = "rejected"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureTransport    FailureKind = "transport"
	FailureCanceled     FailureKind = "canceled"
)

// UploadResult is the outcome of a single fixture upload.
type UploadResult struct {
	Fixture     string
	Kind        FixtureKind
	FailureKind FailureKind
	Err         error
	Duration    time.Duration
}

func (r UploadResult) OK() bool {
	return r.Err == nil
}

// BatchReport collects the results of one import call.
// Err is set when the batch failed before any upload was attempted
// (unreadable directory, token request rejected).
type BatchReport struct {
	Kind        FixtureKind
	Results     []UploadResult
	FailureKind FailureKind
	Err         error
	StartedAt   time.Time
	Duration    time.Duration
}

func NewBatchReport(kind FixtureKind) *BatchReport {
	return &BatchReport{Kind: kind, StartedAt: time.Now()}
}

// Fail marks the whole batch as failed.
func (b *BatchReport) Fail(kind FailureKind, err error) *BatchReport {
	b.FailureKind = kind
	b.Err = err
	return b
}

func (b *BatchReport) Succeeded() []UploadResult {
	var out []UploadResult
	for _, r := range b.Results {
		if r.OK() {
			out = append(out, r)
		}
	}
	return out
}

func (b *BatchReport) Failed() []UploadResult {
	var out []UploadResult
	for _, r := range b.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

func (b *BatchReport) OK() bool {
	return b.Err == nil && len(b.Failed()) == 0
}

// Error joins the batch error and every per-file error.
func (b *BatchReport) Error() error {
	errs := []error{b.Err}
	for _, r := range b.Failed() {
		errs = append(errs, r.Err)
	}
	return errors.Join(errs...)
}
