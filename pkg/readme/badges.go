package readme

import (
	"strings"

	"github.com/f4ah6o/bdg/pkg/badges"
)

// BlockBadges parses every non-blank block line outside code fences.
// An invalid block yields no badges.
func BlockBadges(content string) []badges.Parsed {
	lines, err := BlockLines(content)
	if err != nil {
		return []badges.Parsed{}
	}
	out := make([]badges.Parsed, 0, len(lines))
	fenceWalk(lines, func(_ int, line string, fenced bool) {
		if fenced || strings.TrimSpace(line) == "" {
			return
		}
		out = append(out, badges.Parse(line))
	})
	return out
}
