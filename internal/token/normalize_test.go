package token

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "A+B", expected: "A+B"},
		{name: "trims", input: "  A + B  ", expected: "A + B"},
		{name: "collapses runs", input: "A \t\n  B", expected: "A B"},
		{name: "left single quote", input: "A‘", expected: "A'"},
		{name: "right single quote", input: "A’’", expected: "A''"},
		{name: "modifier apostrophe", input: "Aʼ", expected: "A'"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
