// Package slre implements a compact backtracking matcher for a Perl-like
// regular expression subset: character sets, anchors, greedy and
// non-greedy quantifiers, alternation, and parenthesized capturing
// groups. There is no automaton compilation and no pattern cache — every
// call to Match prepares the pattern fresh, matching the engine's
// intentionally minimal resource model.
//
// Basic usage:
//
//	n, err := slre.Match(`(\d+)-(\d+)`, []byte("room 12-34"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n) // 10 — bytes consumed from the start of input
//
// With captures:
//
//	caps := make([]slre.Capture, 2)
//	n, err := slre.Match(`(\d+)-(\d+)`, []byte("room 12-34"), caps)
//	fmt.Println(caps[0].String(), caps[1].String()) // "12" "34"
//
// Limitations: no Unicode character classes (only byte-level \s \S \d),
// no backreferences, no lookaround, no named groups, and no facility to
// reuse a prepared pattern across calls.
package slre

import (
	"github.com/cesanta/slre/internal/eval"
	"github.com/cesanta/slre/internal/prepare"
)

// flagPrefix, when it leads a pattern, turns on case-insensitive matching
// for the remainder and is then stripped before preparation.
const flagPrefix = "(?i)"

// Match searches input for the first occurrence of pattern and reports
// the number of bytes consumed, measured from the start of input to the
// end of the match (not the length of the match itself — a match starting
// partway through input still reports its end offset).
//
// If caps is non-empty, entry k (0-indexed) receives the substring
// captured by the k-th '(' encountered left to right in pattern. The
// entry of a group that did not participate in the match is usually a
// nil Capture, but may hold a substring recorded by an attempt that was
// later abandoned. A non-empty caps with fewer entries than the pattern
// has groups is an error (ErrCapsTooSmall); a nil or empty caps skips
// captures altogether. Entries beyond the pattern's group count are reset
// to the zero Capture.
func Match(pattern string, input []byte, caps []Capture) (int, error) {
	return MatchWithConfig(pattern, input, caps, DefaultConfig())
}

// MatchString is Match for a string input.
func MatchString(pattern, input string, caps []Capture) (int, error) {
	return Match(pattern, []byte(input), caps)
}

// MatchWithConfig is Match with an explicit Config, overriding the
// preparer's default bracket/branch capacities.
func MatchWithConfig(pattern string, input []byte, caps []Capture, cfg Config) (int, error) {
	patBytes := []byte(pattern)
	ignoreCase := false
	if len(patBytes) >= len(flagPrefix) && string(patBytes[:len(flagPrefix)]) == flagPrefix {
		ignoreCase = true
		patBytes = patBytes[len(flagPrefix):]
	}

	info, err := prepare.Prepare(patBytes, len(caps), cfg)
	if err != nil {
		return 0, &MatchError{Pattern: pattern, Err: err}
	}
	info.IgnoreCase = ignoreCase

	start, n, internalCaps, err := eval.Search(info, input, len(caps))
	if err != nil {
		return 0, &MatchError{Pattern: pattern, Err: err}
	}

	for i := range caps {
		if i < len(internalCaps) {
			caps[i] = Capture{data: internalCaps[i].Data}
		}
	}

	return start + n, nil
}
