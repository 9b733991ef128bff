package slre_test

import (
	"testing"

	"github.com/cesanta/slre"
)

// FuzzMatch checks that Match never panics and never reports a negative
// or out-of-range consumed length, for arbitrary pattern/input pairs.
func FuzzMatch(f *testing.F) {
	seeds := []struct {
		pattern string
		input   string
	}{
		{`(\d+)-(\d+)`, "12-34"},
		{`^(\S+) (\S+) HTTP/(\S+?)\r\n`, "GET / HTTP/1.0\r\n\r\n"},
		{`[a-f]+`, "deadbeef"},
		{`(?i)[^a-z]*`, "ABCxyz"},
		{`a(b|c)*d`, "abccbd"},
		{`\x41\x42`, "AB"},
	}
	for _, s := range seeds {
		f.Add(s.pattern, s.input)
	}

	f.Fuzz(func(t *testing.T, pattern, input string) {
		caps := make([]slre.Capture, 8)
		n, err := slre.MatchString(pattern, input, caps)
		if err != nil {
			return
		}
		if n < 0 || n > len(input) {
			t.Fatalf("MatchString(%q, %q) = %d, nil; want 0 <= n <= %d", pattern, input, n, len(input))
		}
		for _, c := range caps {
			if len(c.Bytes()) > len(input) {
				t.Fatalf("capture longer than input for pattern %q, input %q", pattern, input)
			}
		}
	})
}
