package collect

import "strings"

// ParseNameStatus parses git name-status output into file changes. Each line
// is tab-separated: a status code followed by one path, or two paths for
// renames and copies (the similarity score on R/C codes is dropped). Blank
// and malformed lines are skipped. Output order follows input order.
func ParseNameStatus(text string) []FileChange {
	var changes []FileChange
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		code := fields[0]
		if code == "" {
			continue
		}
		switch {
		case strings.HasPrefix(code, "R"), strings.HasPrefix(code, "C"):
			if len(fields) < 3 {
				continue
			}
			changes = append(changes, FileChange{
				Status:  Status(code[:1]),
				Path:    fields[2],
				OldPath: fields[1],
			})
		default:
			if len(fields) < 2 {
				continue
			}
			changes = append(changes, FileChange{
				Status:  Status(code[:1]),
				Path:    fields[1],
				OldPath: fields[1],
			})
		}
	}
	return changes
}
