package output

import (
	"encoding/json"
	"io"

	"github.com/revulabs/revu/internal/api"
)

// JSONWriter outputs the raw service response when available, falling back
// to re-marshaling the decoded result.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *api.ReviewResult) error {
	if len(result.Raw) > 0 {
		var buf map[string]any
		if err := json.Unmarshal(result.Raw, &buf); err == nil {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(buf)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
