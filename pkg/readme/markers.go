package readme

import (
	"strings"
	"unicode"
)

const (
	BeginMarker = "<!-- bdg:begin -->"
	EndMarker   = "<!-- bdg:end -->"
)

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "```")
}

// fenceWalk calls fn for every line with whether the line is a fence
// delimiter or sits inside a fenced region.
func fenceWalk(lines []string, fn func(i int, line string, fenced bool)) {
	inFence := false
	for i, line := range lines {
		if isFence(line) {
			fn(i, line, true)
			inFence = !inFence
			continue
		}
		fn(i, line, inFence)
	}
}

type markerScan struct {
	begins []int
	ends   []int
}

func scanMarkers(lines []string) markerScan {
	var scan markerScan
	fenceWalk(lines, func(i int, line string, fenced bool) {
		if fenced {
			return
		}
		switch line {
		case BeginMarker:
			scan.begins = append(scan.begins, i)
		case EndMarker:
			scan.ends = append(scan.ends, i)
		}
	})
	return scan
}

// block returns the begin and end line indexes of a valid managed block.
func (s markerScan) block() (int, int, error) {
	if len(s.begins) != 1 || len(s.ends) != 1 {
		return 0, 0, ErrMarkerCardinality
	}
	begin, end := s.begins[0], s.ends[0]
	if begin >= end {
		return 0, 0, ErrMarkerOrder
	}
	return begin, end, nil
}

func headingIndex(lines []string) (int, bool) {
	idx := -1
	fenceWalk(lines, func(i int, line string, fenced bool) {
		if idx < 0 && !fenced && strings.HasPrefix(line, "# ") {
			idx = i
		}
	})
	return idx, idx >= 0
}
