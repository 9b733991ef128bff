package eval

import (
	"github.com/cesanta/slre/internal/errs"
	"github.com/cesanta/slre/internal/prepare"
)

// Search attempts info's pattern against input at each successive start
// offset 0, 1, ..., len(input) — inclusive, so a trailing anchor or a
// quantifier that accepts zero bytes can still match at end-of-input — and
// returns the offset and length of the first success.
//
// If the pattern begins with '^', only offset 0 is attempted: per the data
// model, '^' is meaningful only relative to the start of the search
// window, so trying later offsets could never succeed.
//
// The loop does not stop early on an ordinary match failure at a given
// offset; it keeps trying subsequent offsets regardless, stopping only on
// success or (for an anchored pattern) after the single offset 0 attempt.
// The error returned when every offset fails is whichever failure the last
// attempted offset produced.
func Search(info *prepare.Info, input []byte, capCap int) (start, length int, caps []Capture, err error) {
	anchored := len(info.Pattern) > 0 && info.Pattern[0] == '^'

	var lastErr error = errs.ErrNoMatch
	for i := 0; i <= len(input); i++ {
		attempt := make([]Capture, capCap)
		n, mErr := chooseBranch(info, 0, input[i:], attempt)
		if mErr == nil {
			return i, n, attempt, nil
		}
		lastErr = mErr
		if anchored {
			break
		}
	}
	return 0, 0, nil, lastErr
}
