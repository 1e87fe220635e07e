package version

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// semverOrUnknown applies strict MAJOR.MINOR.PATCH[-pre][+build] rules.
// A leading "v" is rejected, as are the shorthand forms x/mod accepts.
func semverOrUnknown(s string) Info {
	parts, ok := parseSemver(s)
	if !ok {
		return Info{Raw: s, Format: FormatUnknown}
	}
	return Info{Raw: s, Format: FormatSemver, SemverParts: &parts}
}

func parseSemver(s string) (SemverParts, bool) {
	if s == "" || strings.HasPrefix(s, "v") {
		return SemverParts{}, false
	}
	v := "v" + s
	if !semver.IsValid(v) {
		return SemverParts{}, false
	}

	pre := semver.Prerelease(v)
	build := semver.Build(v)
	core := strings.TrimSuffix(strings.TrimSuffix(v[1:], build), pre)
	nums := strings.Split(core, ".")
	if len(nums) != 3 {
		return SemverParts{}, false
	}

	var out [3]uint64
	for i, n := range nums {
		value, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return SemverParts{}, false
		}
		out[i] = value
	}

	parts := SemverParts{Major: out[0], Minor: out[1], Patch: out[2]}
	if pre != "" {
		p := strings.TrimPrefix(pre, "-")
		parts.Pre = &p
	}
	if build != "" {
		b := strings.TrimPrefix(build, "+")
		parts.Build = &b
	}
	return parts, true
}
