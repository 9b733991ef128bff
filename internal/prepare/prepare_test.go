package prepare_test

import (
	"errors"
	"testing"

	"github.com/cesanta/slre/internal/errs"
	"github.com/cesanta/slre/internal/prepare"
)

func TestPrepareBracketsAndBranches(t *testing.T) {
	info, err := prepare.Prepare([]byte("a(b|c)d"), 0, prepare.DefaultConfig())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(info.Brackets) != 2 {
		t.Fatalf("len(Brackets) = %d; want 2 (synthetic pair 0 + one group)", len(info.Brackets))
	}
	if info.Brackets[1].BranchCount != 1 {
		t.Fatalf("group 1 BranchCount = %d; want 1", info.Brackets[1].BranchCount)
	}
}

func TestPrepareNestedGroups(t *testing.T) {
	info, err := prepare.Prepare([]byte("((cd))"), 0, prepare.DefaultConfig())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(info.Brackets) != 3 {
		t.Fatalf("len(Brackets) = %d; want 3", len(info.Brackets))
	}
	if info.Brackets[1].BodyLen != 4 {
		t.Errorf("outer group BodyLen = %d; want 4 (\"(cd)\")", info.Brackets[1].BodyLen)
	}
	if info.Brackets[2].BodyLen != 2 {
		t.Errorf("inner group BodyLen = %d; want 2 (\"cd\")", info.Brackets[2].BodyLen)
	}
}

func TestPrepareErrors(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    error
	}{
		{"unbalanced closing", "x)", errs.ErrUnbalancedBrackets},
		{"unbalanced opening", "(x", errs.ErrUnbalancedBrackets},
		{"empty group", "()", errs.ErrNoMatch},
		{"bad escape", `\q`, errs.ErrInvalidMetacharacter},
		{"bad hex escape", `\xZZ`, errs.ErrInvalidMetacharacter},
		{"unterminated set", "[abc", errs.ErrInvalidSet},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := prepare.Prepare([]byte(tc.pattern), 0, prepare.DefaultConfig())
			if !errors.Is(err, tc.want) {
				t.Fatalf("Prepare(%q) error = %v; want %v", tc.pattern, err, tc.want)
			}
		})
	}
}

func TestPrepareCapacity(t *testing.T) {
	cfg := prepare.Config{MaxBrackets: 2, MaxBranches: 2}

	if _, err := prepare.Prepare([]byte("(a)(b)(c)"), 0, cfg); !errors.Is(err, errs.ErrTooManyBrackets) {
		t.Fatalf("error = %v; want ErrTooManyBrackets", err)
	}
	if _, err := prepare.Prepare([]byte("a|b|c|d"), 0, cfg); !errors.Is(err, errs.ErrTooManyBranches) {
		t.Fatalf("error = %v; want ErrTooManyBranches", err)
	}
}

func TestPrepareCapsTooSmall(t *testing.T) {
	_, err := prepare.Prepare([]byte("(a)(b)"), 1, prepare.DefaultConfig())
	if !errors.Is(err, errs.ErrCapsTooSmall) {
		t.Fatalf("error = %v; want ErrCapsTooSmall", err)
	}
}
