// Package errors provides application-level error types and utilities.
// The taxonomy mirrors the failure phases of ticket issuance: validation,
// lookup, duplicate natural keys, external source failures, render failures
// and commit failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeDuplicateKey   ErrorType = "duplicate_key"
	ErrorTypeExternalSource ErrorType = "external_source_error"
	ErrorTypeRender         ErrorType = "render_error"
	ErrorTypeCommit         ErrorType = "commit_error"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: firstDetail(details),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: firstDetail(details),
	}
}

// NewDuplicateKeyError creates an error for a natural-key uniqueness violation
func NewDuplicateKeyError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicateKey,
		Message: message,
		Code:    http.StatusConflict,
		Details: firstDetail(details),
	}
}

// NewExternalSourceError creates an error for a failed or malformed fetch
// from the external jobs source. The cache is left at its last-good state.
func NewExternalSourceError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeExternalSource,
		Message: message,
		Code:    http.StatusBadGateway,
		Details: firstDetail(details),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: firstDetail(details),
	}
}

func firstDetail(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}

// RenderError reports a document render failure after a ticket number was
// already allocated. The number is permanently consumed; the resulting gap
// in the sequence is expected and auditable.
type RenderError struct {
	TicketNumber string
	Err          error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render_error: document render failed for %s (number consumed): %v", e.TicketNumber, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewRenderError wraps a renderer failure with the consumed ticket number.
func NewRenderError(ticketNumber string, err error) *RenderError {
	return &RenderError{TicketNumber: ticketNumber, Err: err}
}

// CommitError reports a ticket that consumed its number but failed to
// commit, either at the document write or at the database insert. When the
// compensating delete also fails, OrphanPath names the file left behind for
// manual remediation; otherwise no document remains on disk.
type CommitError struct {
	TicketNumber string
	OrphanPath   string
	Err          error
	CleanupErr   error
}

func (e *CommitError) Error() string {
	if e.CleanupErr != nil {
		return fmt.Sprintf("commit_error: ticket %s failed to commit: %v; orphan cleanup failed for %s: %v",
			e.TicketNumber, e.Err, e.OrphanPath, e.CleanupErr)
	}
	return fmt.Sprintf("commit_error: ticket %s failed to commit, no document left on disk: %v", e.TicketNumber, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// NewCommitError wraps a database commit failure. cleanupErr is nil when the
// compensating file delete succeeded.
func NewCommitError(ticketNumber, orphanPath string, err, cleanupErr error) *CommitError {
	ce := &CommitError{TicketNumber: ticketNumber, Err: err, CleanupErr: cleanupErr}
	if cleanupErr != nil {
		ce.OrphanPath = orphanPath
	}
	return ce
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateKeyError checks if the error is a duplicate key error,
// either our own AppError or a raw driver uniqueness violation.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	appErr := GetAppError(err)
	if appErr != nil && appErr.Type == ErrorTypeDuplicateKey {
		return true
	}
	errStr := err.Error()
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// MySQL duplicate entry (jobs source side)
	if strings.Contains(errStr, "Duplicate entry") {
		return true
	}
	return false
}
