package eval

import (
	"github.com/cesanta/slre/internal/errs"
	"github.com/cesanta/slre/internal/prepare"
)

// sequenceMatch walks pat — one branch body, or a single atom peeled off
// for quantifier evaluation — left to right against input, consuming one
// atom per step. It returns the number of input bytes consumed on
// success.
//
// bi identifies the bracket pair that owns this walk. It is advanced
// locally, in place, each time a '(' atom is entered sequentially within
// this same call, so that two groups appearing back to back in one branch
// — "(a)(b)" — land in distinct capture slots. A quantifier loop, however,
// calls back into sequenceMatch with the *same* bi on every repetition
// (see quantifierLoop), so a repeated group's capture slot is overwritten
// on each attempt and ends up holding whichever repetition matched last —
// including a repetition that was itself later abandoned by backtracking.
// This is a deliberate property of the original algorithm, not a bug to
// paper over.
func sequenceMatch(info *prepare.Info, pat []byte, input []byte, bi int, caps []Capture) (int, error) {
	i, j := 0, 0

	for i < len(pat) && j <= len(input) {
		var step int
		if pat[i] == '(' {
			if bi+1 >= len(info.Brackets) {
				return 0, errs.ErrInternal
			}
			step = info.Brackets[bi+1].BodyLen + 2
		} else {
			n, err := prepare.GetOpLen(pat[i:])
			if err != nil {
				return 0, err
			}
			step = n
		}

		if isQuantifier(pat[i]) {
			return 0, errs.ErrUnexpectedQuantifier
		}
		if step <= 0 {
			return 0, errs.ErrInvalidSet
		}

		if i+step < len(pat) && isQuantifier(pat[i+step]) {
			switch pat[i+step] {
			case '?':
				n, err := sequenceMatch(info, pat[i:i+step], input[j:], bi, caps)
				if err == nil {
					j += n
				}
				i += step + 1
				continue
			case '*', '+':
				return quantifierLoop(info, pat, i, step, input, j, bi, caps, pat[i+step])
			}
		}

		switch pat[i] {
		case '[':
			body := pat[i+1 : i+step-1]
			n, err := matchSet(body, input[j:], info.IgnoreCase)
			if err != nil {
				return 0, err
			}
			j += n

		case '(':
			bi++
			n, err := chooseBranch(info, bi, input[j:], caps)
			if err != nil {
				return 0, err
			}
			if bi-1 < len(caps) {
				caps[bi-1] = Capture{Data: input[j : j+n]}
			}
			j += n

		case '^':
			if j != 0 {
				return 0, errs.ErrNoMatch
			}

		case '$':
			if j != len(input) {
				return 0, errs.ErrNoMatch
			}

		default:
			if j >= len(input) {
				return 0, errs.ErrNoMatch
			}
			n, err := matchOp(pat[i:], input[j], info.IgnoreCase)
			if err != nil {
				return 0, err
			}
			j += n
		}

		i += step
	}

	return j, nil
}

func isQuantifier(b byte) bool {
	return b == '*' || b == '+' || b == '?'
}
