package cli

import (
	"errors"
	"fmt"

	"github.com/vburojevic/moncov/internal/domain"
)

// Error codes reported on stderr
const (
	CodeValidation        = "VALIDATION_FAILED"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeIO                = "IO_ERROR"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeMissingInput      = "MISSING_INPUT"
)

// classifyError maps a pipeline error to a CLIError with a code and hint.
func classifyError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return &CLIError{
			Code:    CodeValidation,
			Message: err.Error(),
			Hint:    "Every record needs non-empty system and monitor; required/monitored must be true/false",
			Err:     err,
		}
	}

	var fmtErr *domain.UnsupportedFormatError
	if errors.As(err, &fmtErr) {
		return &CLIError{Code: CodeUnsupportedFormat, Message: err.Error(), Err: err}
	}

	var ioErr *domain.IOError
	if errors.As(err, &ioErr) {
		return &CLIError{Code: CodeIO, Message: err.Error(), Err: err}
	}

	return &CLIError{Code: CodeInvalidInput, Message: err.Error(), Err: err}
}

// outputErrorCommon writes a uniform error line to stderr and returns the
// classified error so main can exit non-zero.
func outputErrorCommon(globals *Globals, err error) error {
	cliErr := classifyError(err)
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", cliErr.Code, cliErr.Message)
		if cliErr.Hint != "" && !globals.Quiet {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", cliErr.Hint)
		}
	}
	return cliErr
}
