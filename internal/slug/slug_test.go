package slug

import "testing"

// TestForTag exercises the tag slug rule: lowercase, whitespace runs
// collapsed to single hyphens, everything else preserved.
func TestForTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple word",
			input: "Ramen",
			want:  "ramen",
		},
		{
			name:  "two words",
			input: "Future Tech",
			want:  "future-tech",
		},
		{
			name:  "multiple spaces collapsed",
			input: "Future   Tech",
			want:  "future-tech",
		},
		{
			name:  "tab as whitespace",
			input: "Web\tDesign",
			want:  "web-design",
		},
		{
			name:  "punctuation preserved",
			input: "Node.js",
			want:  "node.js",
		},
		{
			name:  "plus signs preserved",
			input: "C++",
			want:  "c++",
		},
		{
			name:  "already lowercase",
			input: "habits",
			want:  "habits",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "mixed case",
			input: "WebAssembly",
			want:  "webassembly",
		},
		{
			name:  "three words",
			input: "Self Improvement Tips",
			want:  "self-improvement-tips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForTag(tt.input)
			if got != tt.want {
				t.Errorf("ForTag(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestForTag_Idempotent verifies that slugging an existing slug is a no-op.
func TestForTag_Idempotent(t *testing.T) {
	slugs := []string{"ramen", "future-tech", "node.js", "c++"}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			if got := ForTag(s); got != s {
				t.Errorf("ForTag(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
