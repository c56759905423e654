package output

import (
	"fmt"
	"io"
	"os"

	"github.com/revulabs/revu/internal/api"
)

// Writer renders a review result to a stream.
type Writer interface {
	Write(w io.Writer, result *api.ReviewResult) error
}

// NewWriter returns a Writer for the given format.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (expected text or json)", format)
	}
}

// WriteResult renders the result in the given format to outPath, or stdout
// when outPath is empty.
func WriteResult(result *api.ReviewResult, format, outPath string) error {
	writer, err := NewWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return writer.Write(w, result)
}
