package eval

import "github.com/cesanta/slre/internal/prepare"

// chooseBranch tries each '|'-separated alternative of bracket pair bi, in
// left-to-right order, against input. Every alternative runs, with no
// early exit on success: the result is whichever alternative was tried
// last, even if an earlier one matched. This reproduces the original's
// doh(), which loops over all branches unconditionally reassigning its
// result variable and returns whatever that variable holds once the loop
// ends. A pair with zero branches has exactly one "alternative": its
// whole body.
func chooseBranch(info *prepare.Info, bi int, input []byte, caps []Capture) (int, error) {
	b := info.Brackets[bi]

	var n int
	var err error
	for alt := 0; alt <= b.BranchCount; alt++ {
		start, end := branchBounds(info, b, alt)
		n, err = sequenceMatch(info, info.Pattern[start:end], input, bi, caps)
	}
	return n, err
}

// branchBounds returns the [start, end) slice of info.Pattern holding the
// alt-th alternative (0-indexed) of bracket pair b.
func branchBounds(info *prepare.Info, b prepare.BracketPair, alt int) (start, end int) {
	if alt == 0 {
		start = b.BodyStart
	} else {
		start = info.Branches[b.BranchStart+alt-1].Pos + 1
	}
	if alt == b.BranchCount {
		end = b.BodyStart + b.BodyLen
	} else {
		end = info.Branches[b.BranchStart+alt].Pos
	}
	return start, end
}
