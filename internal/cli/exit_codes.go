// Package cli provides the Cobra commands behind the ccmerge and
// ccextract binaries. The two tools share configuration loading and
// exit-code conventions but are otherwise independent: ccmerge
// consolidates settings files, ccextract converts markdown permission
// catalogs into settings files.
package cli

import (
	"errors"

	"github.com/ariel-frischer/ccperms/internal/settings"
)

// Exit codes for the ccperms CLIs. These support programmatic
// composition and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (bad input file,
	// unwritable output)
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	// (no inputs, glob matching nothing)
	ExitInvalidArguments = 3
)

// ExitCode returns the exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, settings.ErrNoInputFiles) || errors.Is(err, settings.ErrNoMatchingFiles) {
		return ExitInvalidArguments
	}
	return ExitFailure
}
