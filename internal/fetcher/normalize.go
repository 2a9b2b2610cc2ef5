package fetcher

import "strings"

// Normalize drops every zero-length line from text and guarantees the result
// ends with exactly one trailing newline. A lone "\r" counts as a blank line,
// matching how CRLF payloads split. Applying Normalize twice is a no-op.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) == 0 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n") + "\n"
}
