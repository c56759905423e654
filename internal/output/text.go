package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revulabs/revu/internal/api"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *api.ReviewResult) error {
	ew := &errWriter{w: w}

	ew.println("Revu Code Review")
	ew.println(strings.Repeat("─", 60))

	if result.Summary != "" {
		ew.println(result.Summary)
		ew.println(strings.Repeat("─", 60))
	}

	if len(result.Comments) == 0 {
		ew.println("\nNo review comments. Looks good!")
		return ew.err
	}

	// Group comments by file so related feedback reads together.
	byPath := make(map[string][]api.ReviewComment)
	var paths []string
	for _, c := range result.Comments {
		if _, ok := byPath[c.Path]; !ok {
			paths = append(paths, c.Path)
		}
		byPath[c.Path] = append(byPath[c.Path], c)
	}
	sort.Strings(paths)

	for _, path := range paths {
		ew.printf("\n%s\n", path)
		for _, c := range byPath[path] {
			loc := ""
			if c.Line > 0 {
				loc = fmt.Sprintf(":%d", c.Line)
			}
			sev := ""
			if c.Severity != "" {
				sev = fmt.Sprintf(" [%s]", strings.ToUpper(c.Severity))
			}
			ew.printf("  %s%s%s\n", path, loc, sev)
			for _, line := range wrapText(c.Message, 70) {
				ew.printf("    %s\n", line)
			}
		}
	}

	ew.printf("\n%d comment(s) across %d file(s)\n", len(result.Comments), len(paths))
	return ew.err
}

// errWriter accumulates the first write error so each print call doesn't
// need its own check.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
