package parser

import (
	"github.com/ava12/cxearley/errors"
)

// ParseErrors and InternalErrors are this package's error-code bases;
// see cxearley.go at the module root for the full list of class bases.
const (
	ParseErrors    = 201
	InternalErrors = 301
)

const (
	UnknownExpectError = ParseErrors + iota
	BudgetExceededError
	CancelledError
)

const InvariantViolationError = InternalErrors

func unknownExpectError(expect string) *errors.Error {
	return errors.Format(UnknownExpectError, "no rule produces external name %q", expect)
}

func budgetExceededError(maxWork int) *errors.Error {
	return errors.Format(BudgetExceededError, "saturation exceeded the configured work budget of %d items", maxWork)
}

func cancelledError(cause error) *errors.Error {
	return errors.Wrap(CancelledError, cause, "parse cancelled before saturation finished")
}

// invariantViolationError recovers a panic raised by a debug-mode
// invariant check into a structured error rather than letting it
// escape Parse (spec §7: a debug build that detects an impossible
// match-graph shape reports it as an internal error, it does not
// crash the caller).
func invariantViolationError(recovered interface{}) *errors.Error {
	return errors.Format(InvariantViolationError, "internal invariant violated: %v", recovered)
}
