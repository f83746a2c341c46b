package fsys

import "strings"

// SplitLines splits file contents into lines. A trailing newline does not
// produce a final empty line, and \r\n endings are normalized. Empty
// content yields no lines.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
