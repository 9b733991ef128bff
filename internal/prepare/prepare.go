// Package prepare implements the matcher's single left-to-right preparation
// pass: it scans a pattern once, discovers bracket pairs and alternation
// points, validates escape sequences and set syntax, and hands the
// evaluator (package eval) a populated Info it can walk recursively.
//
// Preparation allocates no heap beyond the two tables it returns and holds
// no state across calls — each call to Prepare is independent, by design
// (the matcher never caches a compiled form of a pattern).
package prepare

import (
	"github.com/cesanta/slre/internal/errs"
)

// unclosed is the sentinel BodyLen value for a bracket pair whose closing
// ')' has not yet been seen.
const unclosed = -1

// BracketPair describes one '(' ... ')' span in the pattern, or the
// synthetic pair 0 that wraps the entire pattern.
type BracketPair struct {
	// BodyStart is the offset of the first byte after '(' (0 for pair 0).
	BodyStart int
	// BodyLen is the number of bytes between '(' and ')', exclusive.
	// It holds the sentinel unclosed value until the matching ')' is seen.
	BodyLen int
	// BranchStart is the index into Info.Branches of this pair's first '|'.
	BranchStart int
	// BranchCount is the number of '|' belonging to this pair.
	BranchCount int
}

// Branch records one '|' alternation point and the bracket pair it belongs
// to: the innermost still-open pair at the position the '|' was found.
type Branch struct {
	BracketIndex int
	Pos          int // offset of '|' in the pattern
}

// Config controls the preparer's fixed capacities. The matcher never grows
// these at runtime; exceeding either is a reportable error, not a resize.
type Config struct {
	// MaxBrackets caps the number of bracket pairs (including the
	// synthetic pair 0) a single pattern may contain.
	MaxBrackets int
	// MaxBranches caps the number of '|' alternation points a single
	// pattern may contain.
	MaxBranches int
}

// DefaultConfig returns the suggested capacities from the matcher's data
// model: 100 bracket pairs, 100 branches.
func DefaultConfig() Config {
	return Config{MaxBrackets: 100, MaxBranches: 100}
}

// Info is the preparer's output: the prepared view of one pattern, ready
// for the evaluator to interpret. It is valid only for the duration of one
// match call.
type Info struct {
	Pattern    []byte
	IgnoreCase bool

	Brackets []BracketPair
	Branches []Branch
}

// Prepare scans pattern once and builds the bracket and branch tables.
// capCap is the caller's capture array capacity (0 means the caller wants
// no captures and the capturing-group count is not checked against it).
func Prepare(pattern []byte, capCap int, cfg Config) (*Info, error) {
	info := &Info{
		Pattern:  pattern,
		Brackets: make([]BracketPair, 0, min(cfg.MaxBrackets, 16)+1),
		Branches: make([]Branch, 0, min(cfg.MaxBranches, 16)),
	}

	// Bracket pair 0 always exists and spans the whole pattern.
	info.Brackets = append(info.Brackets, BracketPair{BodyStart: 0, BodyLen: len(pattern)})

	depth := 0
	for i := 0; i < len(pattern); {
		step, err := GetOpLen(pattern[i:])
		if err != nil {
			return nil, err
		}

		switch pattern[i] {
		case '|':
			if len(info.Branches) >= cfg.MaxBranches {
				return nil, errs.ErrTooManyBranches
			}
			owner := len(info.Brackets) - 1
			for owner > 0 && info.Brackets[owner].BodyLen != unclosed {
				owner--
			}
			info.Branches = append(info.Branches, Branch{BracketIndex: owner, Pos: i})

		case '(':
			if len(info.Brackets) >= cfg.MaxBrackets {
				return nil, errs.ErrTooManyBrackets
			}
			depth++
			info.Brackets = append(info.Brackets, BracketPair{BodyStart: i + 1, BodyLen: unclosed})
			if capCap > 0 && len(info.Brackets)-1 > capCap {
				return nil, errs.ErrCapsTooSmall
			}

		case ')':
			ind := len(info.Brackets) - 1
			for ind > 0 && info.Brackets[ind].BodyLen != unclosed {
				ind--
			}
			info.Brackets[ind].BodyLen = i - info.Brackets[ind].BodyStart
			depth--
			if depth < 0 {
				return nil, errs.ErrUnbalancedBrackets
			}
			if i > 0 && pattern[i-1] == '(' {
				return nil, errs.ErrNoMatch
			}

		case '\\':
			if err := validateEscape(pattern[i:]); err != nil {
				return nil, err
			}
		}

		i += step
	}

	if depth != 0 {
		return nil, errs.ErrUnbalancedBrackets
	}

	setupBranchPoints(info)

	return info, nil
}

// validateEscape checks that re, which begins with '\', is a legal escape:
// either \xHH with two hex digits, or \ followed by one of the recognized
// metacharacters (^ $ ( ) . [ ] * + ? | \) or one of S s d.
func validateEscape(re []byte) error {
	if len(re) < 2 {
		return errs.ErrInvalidMetacharacter
	}
	switch re[1] {
	case 'x':
		if len(re) < 4 || !isHexDigit(re[2]) || !isHexDigit(re[3]) {
			return errs.ErrInvalidMetacharacter
		}
	case 'S', 's', 'd':
		// recognized class escapes
	default:
		if !isMetacharacter(re[1]) {
			return errs.ErrInvalidMetacharacter
		}
	}
	return nil
}

// isMetacharacter reports whether b is one of the literal characters that
// may be escaped to match themselves.
func isMetacharacter(b byte) bool {
	switch b {
	case '^', '$', '(', ')', '.', '[', ']', '*', '+', '?', '|', '\\':
		return true
	}
	return false
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// opLen returns the byte length of the single token at the start of re:
// 4 for \xHH, 2 for any other \-escape, 1 otherwise. re must be non-empty.
func opLen(re []byte) int {
	if re[0] == '\\' {
		if len(re) >= 2 && re[1] == 'x' {
			return 4
		}
		return 2
	}
	return 1
}

// setLen returns the byte length of a bracket-set body (the bytes between
// '[' and ']', exclusive), scanning token-by-token via opLen. It reports
// false if ']' is not found before the end of body.
func setLen(body []byte) (int, bool) {
	i := 0
	for i < len(body) {
		if body[i] == ']' {
			return i, true
		}
		n := opLen(body[i:])
		if n <= 0 {
			return 0, false
		}
		i += n
	}
	return 0, false
}

// GetOpLen returns the byte length of the atom at the start of re:
// 1 + set body length + 1 for '[...]', opLen(re) otherwise. This is the
// same atom-sizing rule the evaluator uses to step through a branch body
// (package eval calls this directly rather than duplicating it), since
// sizing an atom for the preparer's bracket scan and sizing it for the
// evaluator's sequence walk are the same question asked at two different
// times.
func GetOpLen(re []byte) (int, error) {
	if len(re) == 0 {
		return 0, errs.ErrInternal
	}
	if re[0] == '[' {
		n, ok := setLen(re[1:])
		if !ok {
			return 0, errs.ErrInvalidSet
		}
		return n + 2, nil
	}
	return opLen(re), nil
}

// setupBranchPoints stably sorts Branches by owning bracket index and
// records each bracket's contiguous branch range. It buckets by bracket
// index in a single pass per bracket rather than calling sort.SliceStable,
// since MaxBranches and MaxBrackets are small by design (suggested 100
// each) and a bucket pass is both stable and simple to verify by eye.
func setupBranchPoints(info *Info) {
	bucketed := make([]Branch, 0, len(info.Branches))
	for bi := range info.Brackets {
		info.Brackets[bi].BranchStart = len(bucketed)
		count := 0
		for _, br := range info.Branches {
			if br.BracketIndex == bi {
				bucketed = append(bucketed, br)
				count++
			}
		}
		info.Brackets[bi].BranchCount = count
	}
	info.Branches = bucketed
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
