// Package version decides whether a release string follows semantic
// versioning, calendar versioning, or neither.
package version

import "strings"

type Format string

const (
	FormatSemver  Format = "semver"
	FormatCalver  Format = "calver"
	FormatUnknown Format = "unknown"
)

// Options controls the calendar heuristics. Callers supply every field;
// DefaultOptions mirrors the values used when no config file is present.
type Options struct {
	AllowYYCalver bool `json:"allow_yy_calver"`
	YearMin       int  `json:"year_min"`
	YearMax       int  `json:"year_max"`
}

func DefaultOptions() Options {
	return Options{AllowYYCalver: false, YearMin: 2000, YearMax: 2199}
}

type CalverParts struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   *int `json:"day,omitempty"`
	Micro *int `json:"micro,omitempty"`
}

type SemverParts struct {
	Major uint64  `json:"major"`
	Minor uint64  `json:"minor"`
	Patch uint64  `json:"patch"`
	Pre   *string `json:"pre,omitempty"`
	Build *string `json:"build,omitempty"`
}

type Info struct {
	Raw          string       `json:"raw"`
	Format       Format       `json:"version_format"`
	CalverScheme *string      `json:"calver_scheme,omitempty"`
	CalverParts  *CalverParts `json:"calver_parts,omitempty"`
	Modifier     *string      `json:"modifier,omitempty"`
	SemverParts  *SemverParts `json:"semver_parts,omitempty"`
}

func (i Info) IsSemver() bool {
	return i.Format == FormatSemver
}

func (i Info) IsCalver() bool {
	return i.Format == FormatCalver
}

// Classify inspects raw and reports its version format. It never fails;
// anything unrecognised comes back as FormatUnknown.
func Classify(raw string, opts Options) Info {
	trimmed := strings.TrimSpace(raw)
	core, modifier := splitModifier(trimmed)

	if strings.Contains(core, "+") || (strings.Contains(core, ".") && strings.Contains(core, "-")) {
		return semverOrUnknown(trimmed)
	}

	if scheme, parts, ok := matchCalver(core, opts); ok {
		return Info{
			Raw:          core,
			Format:       FormatCalver,
			CalverScheme: &scheme,
			CalverParts:  &parts,
			Modifier:     modifier,
		}
	}

	return semverOrUnknown(trimmed)
}

// splitModifier separates a trailing textual qualifier such as "-beta" or
// "rc1" from the numeric core.
func splitModifier(s string) (string, *string) {
	if idx := strings.LastIndex(s, "-"); idx >= 0 {
		suffix := s[idx+1:]
		if suffix != "" && hasASCIILetter(suffix) {
			return s[:idx], &suffix
		}
	}

	lastDigit := strings.LastIndexFunc(s, isASCIIDigit)
	if lastDigit >= 0 {
		tail := s[lastDigit+1:]
		if tail != "" && hasASCIILetter(tail) {
			return s[:lastDigit+1], &tail
		}
	}
	return s, nil
}

func hasASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
