package eval

import (
	"github.com/cesanta/slre/internal/errs"
	"github.com/cesanta/slre/internal/prepare"
)

// quantifierLoop implements the '*'/'+' repetition of the atom S =
// pat[i:i+step], optionally made non-greedy by a following '?'. Whatever
// follows the quantifier (and its optional '?') is the suffix R; a
// repetition count is only accepted if R also matches immediately after
// it, since the loop is standing in for the rest of the enclosing
// sequenceMatch call — once it returns, nothing else in pat is walked.
//
// nj tracks the best accepted total (input bytes consumed from the start
// of this call), with -1 meaning "nothing accepted yet": a legitimate
// zero-byte acceptance (0 repetitions of S, recorded only for '*') must
// stay distinguishable from "no candidate found at all".
func quantifierLoop(info *prepare.Info, pat []byte, i, step int, input []byte, j, bi int, caps []Capture, quant byte) (int, error) {
	ni := i + step + 1
	nonGreedy := false
	if ni < len(pat) && pat[ni] == '?' {
		nonGreedy = true
		ni++
	}
	hasSuffix := ni < len(pat)
	suffix := pat[ni:]

	// tryTail checks whether the suffix matches starting at pos, returning
	// the new total on success. With no suffix, pos itself is the total.
	tryTail := func(pos int) (int, bool) {
		if !hasSuffix {
			return pos, true
		}
		n2, err := sequenceMatch(info, suffix, input[pos:], bi, caps)
		if err != nil {
			return 0, false
		}
		return pos + n2, true
	}

	nj := -1

	// '*' accepts zero repetitions of S outright, provided the suffix
	// matches at the current position; '+' requires at least one
	// repetition before anything counts.
	if quant == '*' {
		if cand, ok := tryTail(j); ok {
			nj = cand
			if nonGreedy {
				return nj, nil
			}
		}
	}

	j2 := j
	for {
		n1, err := sequenceMatch(info, pat[i:i+step], input[j2:], bi, caps)
		if err != nil {
			break
		}
		if cand, ok := tryTail(j2 + n1); ok {
			nj = cand
		}
		if nonGreedy && nj >= 0 {
			break
		}
		if n1 == 0 {
			// No progress possible; further repetitions would loop forever.
			break
		}
		j2 += n1
	}

	if nj < 0 {
		return 0, errs.ErrNoMatch
	}
	return nj, nil
}
