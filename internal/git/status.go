package git

import (
	"fmt"
	"strings"
)

// StatusEntry is one line of `git status --porcelain` output.
type StatusEntry struct {
	// Label is the status code plus the path exactly as git printed it,
	// meant for display. Renames keep the full "old -> new" form.
	Label string
	// Path is the path to hand to `git add`. For renames this is the
	// destination path.
	Path string
}

const renameSeparator = " -> "

// ParseStatus parses porcelain short-format output. Each line is a
// two-character status code, one separator, then the path, which may
// contain spaces. Blank lines produce no entries. The parser trusts the
// output verbatim and never touches the filesystem.
func ParseStatus(raw string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var code, field string
		if len(line) > 3 {
			code = strings.TrimSpace(line[:3])
			field = strings.TrimSpace(line[3:])
		} else {
			code = strings.TrimSpace(line)
		}

		path := field
		if idx := strings.Index(field, renameSeparator); idx >= 0 {
			path = strings.TrimSpace(field[idx+len(renameSeparator):])
		}
		// A truncated line yields no path; an entry without one could
		// never be staged, so it is dropped rather than surfaced.
		if path == "" {
			continue
		}

		entries = append(entries, StatusEntry{
			Label: fmt.Sprintf("%-2s %s", code, field),
			Path:  path,
		})
	}
	return entries
}
