package question

import "testing"

// TestMatches verifies trimming and case folding without internal whitespace collapse.
func TestMatches(t *testing.T) {
	cases := []struct {
		name      string
		expected  string
		submitted string
		want      bool
	}{
		{name: "surrounding whitespace", expected: "2", submitted: " 2 ", want: true},
		{name: "case insensitive", expected: "Paris", submitted: "PARIS", want: true},
		{name: "numeric formatting differs", expected: "2", submitted: "2.0", want: false},
		{name: "internal whitespace kept", expected: "a b", submitted: "a  b", want: false},
		{name: "expected side trimmed", expected: " blue\t", submitted: "Blue", want: true},
		{name: "trailing newline", expected: "4", submitted: "4\n", want: true},
		{name: "both empty", expected: "", submitted: "   ", want: true},
		{name: "different", expected: "yes", submitted: "no", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.expected, tc.submitted); got != tc.want {
				t.Fatalf("Matches(%q, %q) = %v, want %v", tc.expected, tc.submitted, got, tc.want)
			}
		})
	}
}

// TestNormalizeAnswerText verifies the normalized form used for matching.
func TestNormalizeAnswerText(t *testing.T) {
	if got := NormalizeAnswerText("  New  York \n"); got != "new  york" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}
