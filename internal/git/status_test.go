package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []StatusEntry
	}{
		{
			name:  "modified file",
			input: " M src/index.js",
			expected: []StatusEntry{
				{Label: "M  src/index.js", Path: "src/index.js"},
			},
		},
		{
			name:  "staged new file",
			input: "A  cmd/root.go",
			expected: []StatusEntry{
				{Label: "A  cmd/root.go", Path: "cmd/root.go"},
			},
		},
		{
			name:  "untracked file",
			input: "?? notes.txt",
			expected: []StatusEntry{
				{Label: "?? notes.txt", Path: "notes.txt"},
			},
		},
		{
			name:  "path with spaces",
			input: " M docs/getting started.md",
			expected: []StatusEntry{
				{Label: "M  docs/getting started.md", Path: "docs/getting started.md"},
			},
		},
		{
			name:  "rename resolves to destination",
			input: "R  old.txt -> new.txt",
			expected: []StatusEntry{
				{Label: "R  old.txt -> new.txt", Path: "new.txt"},
			},
		},
		{
			name:  "rename with spaces in both paths",
			input: "R  old name.txt -> new name.txt",
			expected: []StatusEntry{
				{Label: "R  old name.txt -> new name.txt", Path: "new name.txt"},
			},
		},
		{
			name:     "blank line produces no entry",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace-only line produces no entry",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "truncated line without a path produces no entry",
			input:    "??",
			expected: nil,
		},
		{
			name:     "code-only line between entries is dropped",
			input:    " M a.go\n M\n?? b.go",
			expected: []StatusEntry{
				{Label: "M  a.go", Path: "a.go"},
				{Label: "?? b.go", Path: "b.go"},
			},
		},
		{
			name:  "multiple lines with trailing newline",
			input: " M a.go\n?? b.go\n",
			expected: []StatusEntry{
				{Label: "M  a.go", Path: "a.go"},
				{Label: "?? b.go", Path: "b.go"},
			},
		},
		{
			name:  "blank lines between entries are dropped",
			input: " M a.go\n\n D b.go",
			expected: []StatusEntry{
				{Label: "M  a.go", Path: "a.go"},
				{Label: "D  b.go", Path: "b.go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ParseStatus(tt.input)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestParseStatusTrustsOutputVerbatim(t *testing.T) {
	// The parser must not drop entries for paths that do not exist on disk.
	entries := ParseStatus("D  definitely/not/on/disk.go")
	assert.Len(t, entries, 1)
	assert.Equal(t, "definitely/not/on/disk.go", entries[0].Path)
}
