package slre

import (
	"fmt"

	"github.com/cesanta/slre/internal/errs"
)

// Sentinel errors, one per failure kind the matcher can report. Compare
// against these with errors.Is; a MatchError returned from Match wraps
// whichever sentinel applies, along with the pattern that triggered it.
var (
	ErrNoMatch              = errs.ErrNoMatch
	ErrUnexpectedQuantifier = errs.ErrUnexpectedQuantifier
	ErrUnbalancedBrackets   = errs.ErrUnbalancedBrackets
	ErrInvalidMetacharacter = errs.ErrInvalidMetacharacter
	ErrInvalidSet           = errs.ErrInvalidSet
	ErrCapsTooSmall         = errs.ErrCapsTooSmall
	ErrTooManyBranches      = errs.ErrTooManyBranches
	ErrTooManyBrackets      = errs.ErrTooManyBrackets
	ErrInternal             = errs.ErrInternal
)

// MatchError wraps a matcher failure with the pattern that triggered it,
// mirroring nfa.CompileError in the engine this package is modeled on.
type MatchError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("slre: match(%q): %s", e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// slre.ErrNoMatch) works on a MatchError.
func (e *MatchError) Unwrap() error {
	return e.Err
}
