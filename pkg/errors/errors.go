package errors

import (
	"errors"
	"fmt"
)

// UnauthorizedError is returned when a service rejects the bearer token.
type UnauthorizedError struct {
	endpoint string
}

func NewUnauthorizedError(endpoint string) *UnauthorizedError {
	return &UnauthorizedError{endpoint: endpoint}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized request to %s", e.endpoint)
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

// UploadRejectedError is returned when an ingestion service answers with a
// non-success status.
type UploadRejectedError struct {
	Fixture    string
	StatusCode int
	Status     string
}

func NewUploadRejectedError(fixture string, statusCode int, status string) *UploadRejectedError {
	return &UploadRejectedError{Fixture: fixture, StatusCode: statusCode, Status: status}
}

func (e *UploadRejectedError) Error() string {
	return fmt.Sprintf("upload of %q rejected: %s", e.Fixture, e.Status)
}

func IsUploadRejectedError(err error) bool {
	var e *UploadRejectedError
	return errors.As(err, &e)
}

// TokenError wraps a failed client-credentials grant.
type TokenError struct {
	tokenURL string
	err      error
}

func NewTokenError(tokenURL string, err error) *TokenError {
	return &TokenError{tokenURL: tokenURL, err: err}
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("failed to obtain access token from %s: %v", e.tokenURL, e.err)
}

func (e *TokenError) Unwrap() error {
	return e.err
}

func IsTokenError(err error) bool {
	var e *TokenError
	return errors.As(err, &e)
}

// ElementNotFoundError is returned by browser helpers when an element never
// showed up before the timeout.
type ElementNotFoundError struct {
	Selector string
	Text     string
	err      error
}

func NewElementNotFoundError(selector, text string, err error) *ElementNotFoundError {
	return &ElementNotFoundError{Selector: selector, Text: text, err: err}
}

func (e *ElementNotFoundError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("element %q not found: %v", e.Selector, e.err)
	}
	return fmt.Sprintf("element %q containing %q not found: %v", e.Selector, e.Text, e.err)
}

func (e *ElementNotFoundError) Unwrap() error {
	return e.err
}

func IsElementNotFoundError(err error) bool {
	var e *ElementNotFoundError
	return errors.As(err, &e)
}

// DocumentNotFoundError is returned by the mock document store.
type DocumentNotFoundError struct {
	kind string
	id   string
}

func NewDocumentNotFoundError(kind, id string) *DocumentNotFoundError {
	return &DocumentNotFoundError{kind: kind, id: id}
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("%s document %q not found", e.kind, e.id)
}

func IsDocumentNotFoundError(err error) bool {
	var e *DocumentNotFoundError
	return errors.As(err, &e)
}
