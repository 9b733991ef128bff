package slre

import "github.com/cesanta/slre/internal/prepare"

// Config controls the preparer's fixed capacities: the maximum number of
// bracket pairs and alternation points a single pattern may contain. The
// matcher never grows these at runtime — exceeding either is a reportable
// error (ErrTooManyBrackets / ErrTooManyBranches), not a resize.
type Config = prepare.Config

// DefaultConfig returns the suggested capacities: 100 bracket pairs, 100
// '|' alternation points.
func DefaultConfig() Config {
	return prepare.DefaultConfig()
}
