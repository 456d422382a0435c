package slug

import "testing"

// TestGenerate verifies slug generation for typical inputs.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Hello World", want: "hello-world"},
		{name: "punctuation stripped", input: "Hello, World! 2026", want: "hello-world-2026"},
		{name: "consecutive spaces", input: "a  b", want: "a-b"},
		{name: "leading and trailing", input: "  -Brand-  ", want: "brand"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestFilename verifies object-key sanitization keeps extensions and
// never returns an empty name.
func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean name untouched", input: "logo.png", want: "logo.png"},
		{name: "spaces and parens", input: "My Logo (final).PNG", want: "My_Logo__final_.PNG"},
		{name: "path traversal stripped", input: "../../etc/passwd", want: "passwd"},
		{name: "unicode replaced", input: "löGo.svg", want: "l_Go.svg"},
		{name: "empty falls back", input: "", want: "file"},
		{name: "dots only falls back", input: "...", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.input); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
