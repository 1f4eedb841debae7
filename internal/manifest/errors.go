package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the package.json file does not exist
	ErrFileNotFound = errors.New("package.json not found")

	// ErrInvalidFormat indicates the file is not a valid JSON object
	ErrInvalidFormat = errors.New("package.json must be a JSON object")
)
