// Package badges turns single lines of badge markup into structured
// records and renders new badges back into markup.
package badges

import "strings"

const SourceReadme = "readme"

// Parsed is a badge line read back from a README.
type Parsed struct {
	ID     string            `json:"id"`
	Kind   Kind              `json:"kind"`
	Label  string            `json:"label"`
	Image  string            `json:"image"`
	Link   *string           `json:"link,omitempty"`
	Source string            `json:"source"`
	Meta   map[string]string `json:"meta,omitempty"`
	Raw    string            `json:"raw"`
}

type shape struct {
	label string
	image string
	link  *string
}

type shapeMatcher func(line string) (shape, bool)

// Linked images are tried before bare images.
var shapeMatchers = []shapeMatcher{
	matchLinkedImage,
	matchImage,
}

// Parse never fails. Lines that are not badge markup come back as an
// unknown record keyed by a hash of the line.
func Parse(line string) Parsed {
	if p, ok := ParseOptional(line); ok {
		return p
	}
	return Parsed{
		ID:     UnknownID(line),
		Kind:   KindUnknown,
		Source: SourceReadme,
		Raw:    line,
	}
}

// ParseOptional reports false when line has neither badge shape.
func ParseOptional(line string) (Parsed, bool) {
	for _, m := range shapeMatchers {
		if s, ok := m(line); ok {
			return build(line, s), true
		}
	}
	return Parsed{}, false
}

func build(raw string, s shape) Parsed {
	kind, id, meta := inferKind(s.image, raw)
	return Parsed{
		ID:     id,
		Kind:   kind,
		Label:  s.label,
		Image:  s.image,
		Link:   s.link,
		Source: SourceReadme,
		Meta:   meta,
		Raw:    raw,
	}
}

// matchLinkedImage recognises [![Label](Image)](Link).
func matchLinkedImage(line string) (shape, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[![") || !strings.HasSuffix(trimmed, ")") {
		return shape{}, false
	}
	startLabel := 3
	endLabel := strings.Index(trimmed[startLabel:], "](")
	if endLabel < 0 {
		return shape{}, false
	}
	endLabel += startLabel

	startImage := endLabel + 2
	endImage := strings.Index(trimmed[startImage:], ")]")
	if endImage < 0 {
		return shape{}, false
	}
	endImage += startImage

	startLink := strings.Index(trimmed[endImage+2:], "(")
	if startLink < 0 {
		return shape{}, false
	}
	startLink += endImage + 3
	endLink := strings.Index(trimmed[startLink:], ")")
	if endLink < 0 {
		return shape{}, false
	}
	endLink += startLink

	image := trimmed[startImage:endImage]
	if image == "" {
		return shape{}, false
	}
	link := strings.TrimSpace(trimmed[startLink:endLink])
	return shape{
		label: trimmed[startLabel:endLabel],
		image: strings.TrimSpace(image),
		link:  &link,
	}, true
}

// matchImage recognises ![Label](Image).
func matchImage(line string) (shape, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "![") || !strings.HasSuffix(trimmed, ")") {
		return shape{}, false
	}
	startLabel := 2
	endLabel := strings.Index(trimmed[startLabel:], "](")
	if endLabel < 0 {
		return shape{}, false
	}
	endLabel += startLabel

	startImage := endLabel + 2
	endImage := strings.Index(trimmed[startImage:], ")")
	if endImage < 0 {
		return shape{}, false
	}
	endImage += startImage

	image := trimmed[startImage:endImage]
	if image == "" {
		return shape{}, false
	}
	return shape{
		label: trimmed[startLabel:endLabel],
		image: strings.TrimSpace(image),
	}, true
}
