package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/sentencelint/internal/configloader"
	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

// Exit codes for sentencelint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found warnings in strict mode.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates files that could not be read or written.
	ExitIOError = 74
)

// ErrLintIssuesFound is returned when the run should fail because of its findings.
var ErrLintIssuesFound = errors.New("lint issues found")

// exitError carries a specific exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCodeFromResult determines the exit code of a lint run.
//
// Error diagnostics fail the run; warnings and info diagnostics fail it only in
// strict mode. Files that could not be processed fail it with ExitIOError.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	bySeverity := result.Stats.DiagnosticsBySeverity
	switch {
	case bySeverity[config.SeverityError] > 0:
		return ExitLintErrors
	case result.HasErrors():
		return ExitIOError
	case strict && result.HasIssues():
		return ExitLintWarnings
	default:
		return ExitSuccess
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var ve *configloader.ValidationError
	switch {
	case errors.As(err, &ve):
		return ExitConfigError
	case errors.Is(err, runner.ErrNoSuchPath), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
