package settings

import "errors"

// Sentinel errors for the failure conditions the merger surfaces to users.
// Call sites wrap these with the offending path so messages stay
// attributable while errors.Is still matches.
var (
	// ErrNoInputFiles indicates no input files were supplied at all.
	ErrNoInputFiles = errors.New("no input files to merge")

	// ErrNoMatchingFiles indicates a glob expression matched zero files.
	ErrNoMatchingFiles = errors.New("no files match pattern")

	// ErrFileNotFound indicates a named input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidJSON indicates an input file is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrUnwritableOutput indicates the output destination cannot be written.
	ErrUnwritableOutput = errors.New("cannot write output")
)
