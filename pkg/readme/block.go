package readme

import "strings"

// Ensure returns content with exactly one managed block. A document that
// already has one sentinel pair is returned unchanged; otherwise a new pair
// is inserted after the first top-level heading, or at the top.
func Ensure(content string) string {
	if content == "" {
		return BeginMarker + "\n" + EndMarker
	}
	d := newDocument(content)
	scan := scanMarkers(d.lines)
	if len(scan.begins) == 1 && len(scan.ends) == 1 {
		return content
	}

	at := 0
	if idx, ok := headingIndex(d.lines); ok {
		at = idx + 1
	}
	lines := make([]string, 0, len(d.lines)+2)
	lines = append(lines, d.lines[:at]...)
	lines = append(lines, BeginMarker, EndMarker)
	lines = append(lines, d.lines[at:]...)
	return d.join(lines)
}

// MarkerCount counts begin sentinels outside code fences.
func MarkerCount(content string) int {
	return len(scanMarkers(newDocument(content).lines).begins)
}

// ManagedLines is the tolerant reader: non-blank lines of the block, or
// nothing when the block is not valid.
func ManagedLines(content string) []string {
	lines, err := BlockLines(content)
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// BlockLines returns every line strictly between the sentinels.
func BlockLines(content string) ([]string, error) {
	d := newDocument(content)
	begin, end, err := scanMarkers(d.lines).block()
	if err != nil {
		return nil, err
	}
	out := make([]string, end-begin-1)
	copy(out, d.lines[begin+1:end])
	return out, nil
}

// Rewrite replaces the block contents with rendered badge lines.
func Rewrite(content string, badges []string) (string, error) {
	return replaceBlock(content, badges)
}

// RewriteLines replaces the block contents with lines taken from an
// earlier read of the block.
func RewriteLines(content string, lines []string) (string, error) {
	return replaceBlock(content, lines)
}

func replaceBlock(content string, replacement []string) (string, error) {
	d := newDocument(content)
	begin, end, err := scanMarkers(d.lines).block()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, begin+1+len(replacement)+len(d.lines)-end)
	lines = append(lines, d.lines[:begin+1]...)
	lines = append(lines, replacement...)
	lines = append(lines, d.lines[end:]...)
	return d.join(lines), nil
}

// RemoveBlock deletes both sentinels and everything between them.
func RemoveBlock(content string) (string, error) {
	d := newDocument(content)
	begin, end, err := scanMarkers(d.lines).block()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(d.lines)-(end-begin+1))
	lines = append(lines, d.lines[:begin]...)
	lines = append(lines, d.lines[end+1:]...)
	return d.join(lines), nil
}
