package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNameStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []FileChange
	}{
		{
			name:  "basic statuses",
			input: "M\ta.js\nA\tb.js\nD\tc.js",
			want: []FileChange{
				{Status: StatusModified, Path: "a.js", OldPath: "a.js"},
				{Status: StatusAdded, Path: "b.js", OldPath: "b.js"},
				{Status: StatusDeleted, Path: "c.js", OldPath: "c.js"},
			},
		},
		{
			name:  "rename drops similarity score",
			input: "R100\told.js\tnew.js",
			want: []FileChange{
				{Status: StatusRenamed, Path: "new.js", OldPath: "old.js"},
			},
		},
		{
			name:  "copy",
			input: "C075\tsrc/a.go\tsrc/b.go",
			want: []FileChange{
				{Status: StatusCopied, Path: "src/b.go", OldPath: "src/a.go"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines skipped",
			input: "\nM\ta.go\n\n\nD\tb.go\n",
			want: []FileChange{
				{Status: StatusModified, Path: "a.go", OldPath: "a.go"},
				{Status: StatusDeleted, Path: "b.go", OldPath: "b.go"},
			},
		},
		{
			name:  "malformed lines skipped",
			input: "M\nR100\tonly-old\nM\tok.go",
			want: []FileChange{
				{Status: StatusModified, Path: "ok.go", OldPath: "ok.go"},
			},
		},
		{
			name:  "windows line endings",
			input: "M\ta.go\r\nA\tb.go\r\n",
			want: []FileChange{
				{Status: StatusModified, Path: "a.go", OldPath: "a.go"},
				{Status: StatusAdded, Path: "b.go", OldPath: "b.go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNameStatus(tt.input))
		})
	}
}

func TestParseNameStatus_OrderPreserved(t *testing.T) {
	input := "M\tz.go\nM\ta.go\nM\tm.go"
	got := ParseNameStatus(input)
	assert.Equal(t, []string{"z.go", "a.go", "m.go"},
		[]string{got[0].Path, got[1].Path, got[2].Path})
}
