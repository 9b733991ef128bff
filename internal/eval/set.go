package eval

import "github.com/cesanta/slre/internal/errs"

// matchSet evaluates a character-set body — the bytes between '[' and
// ']', exclusive, with an optional leading '^' negating the result —
// against the single leading byte of input, consuming exactly one byte on
// a match.
//
// The preparer treats a whole "[...]" as one opaque token and never
// inspects the bytes inside it, so an escape sequence embedded in a set
// (e.g. "[\xZZ]") is only validated here, at match time, the same as the
// original implementation.
func matchSet(body []byte, input []byte, ignoreCase bool) (int, error) {
	if len(input) == 0 {
		return 0, errs.ErrNoMatch
	}
	c := input[0]

	invert := len(body) > 0 && body[0] == '^'
	if invert {
		body = body[1:]
	}

	matched := false
	for i := 0; i < len(body) && !matched; {
		if body[i] != '-' && i+2 < len(body) && body[i+1] == '-' && body[i+2] != ']' {
			lo, hi := body[i], body[i+2]
			x, a, b := c, lo, hi
			if ignoreCase {
				x, a, b = toLower(x), toLower(a), toLower(b)
			}
			if x >= a && x <= b {
				matched = true
			}
			i += 3
			continue
		}

		n, err := matchItem(body[i:], c, ignoreCase)
		if err != nil && err != errs.ErrNoMatch {
			return 0, err
		}
		if err == nil && n > 0 {
			matched = true
		}
		i += opLenForItem(body[i:])
	}

	if invert {
		matched = !matched
	}
	if !matched {
		return 0, errs.ErrNoMatch
	}
	return 1, nil
}

// matchItem evaluates one non-range set item against c. Inside a set,
// '.' is a literal byte rather than the wildcard it is everywhere else.
func matchItem(item []byte, c byte, ignoreCase bool) (int, error) {
	if item[0] == '.' {
		if c != '.' {
			return 0, errs.ErrNoMatch
		}
		return 1, nil
	}
	return matchOp(item, c, ignoreCase)
}

// opLenForItem returns the byte length of one set item: 4 for \xHH, 2 for
// any other \-escape, 1 otherwise.
func opLenForItem(item []byte) int {
	if item[0] == '\\' {
		if len(item) >= 2 && item[1] == 'x' {
			return 4
		}
		return 2
	}
	return 1
}
