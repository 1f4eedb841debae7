package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNoEntries indicates no build outputs were found for a package
	ErrNoEntries = errors.New("no build outputs found")

	// ErrNoOutDir indicates the configured output directory does not exist
	ErrNoOutDir = errors.New("output directory not found")

	// ErrWriteFailed indicates writing the manifest failed
	ErrWriteFailed = errors.New("write failed")
)

// PackageError wraps an error with the package directory it occurred in.
type PackageError struct {
	Dir string
	Err error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %s: %v", e.Dir, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// NewPackageError creates a new PackageError
func NewPackageError(dir string, err error) *PackageError {
	return &PackageError{Dir: dir, Err: err}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
