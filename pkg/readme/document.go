// Package readme edits the managed badge block of a Markdown document
// without touching anything outside it.
package readme

import "strings"

const (
	NewlineLF   = "LF"
	NewlineCRLF = "CRLF"
)

// document is a README split into lines with enough information to join it
// back byte for byte.
type document struct {
	lines    []string
	newline  string
	trailing bool
}

func newDocument(content string) document {
	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}
	return document{
		lines:    splitLines(content, newline),
		newline:  newline,
		trailing: strings.HasSuffix(content, newline),
	}
}

func splitLines(content string, newline string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, newline)
	if strings.HasSuffix(content, newline) {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (d document) join(lines []string) string {
	out := strings.Join(lines, d.newline)
	if d.trailing {
		out += d.newline
	}
	return out
}

// NewlineInfo reports the newline style of content and whether it ends
// with a newline.
func NewlineInfo(content string) (string, bool) {
	d := newDocument(content)
	if d.newline == "\r\n" {
		return NewlineCRLF, d.trailing
	}
	return NewlineLF, d.trailing
}
