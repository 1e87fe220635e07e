package version

import (
	"strconv"
	"strings"
)

const (
	SchemeYYYYMM        = "YYYY.MM"
	SchemeYYYYMMMicro   = "YYYY.MM.MICRO"
	SchemeYYYYMMDD      = "YYYY-MM-DD"
	SchemeYYYYMMDDPlain = "YYYYMMDD"
	SchemeYYYYMMDDMicro = "YYYYMMDD.MICRO"
	SchemeYYMM          = "YY.MM"
	SchemeYYMMMicro     = "YY.MM.MICRO"
)

type calverMatcher func(core string, opts Options) (string, CalverParts, bool)

// Order matters: the first matcher to accept the core wins.
var calverMatchers = []calverMatcher{
	matchYYYYMM,
	matchYYYYMMMicro,
	matchYYYYMMDD,
	matchCompactDate,
}

var shortYearMatchers = []calverMatcher{
	matchYYMM,
	matchYYMMMicro,
}

func matchCalver(core string, opts Options) (string, CalverParts, bool) {
	for _, m := range calverMatchers {
		if scheme, parts, ok := m(core, opts); ok {
			return scheme, parts, true
		}
	}
	if opts.AllowYYCalver {
		for _, m := range shortYearMatchers {
			if scheme, parts, ok := m(core, opts); ok {
				return scheme, parts, true
			}
		}
	}
	return "", CalverParts{}, false
}

func matchYYYYMM(core string, opts Options) (string, CalverParts, bool) {
	parts := strings.Split(core, ".")
	if len(parts) != 2 || len(parts[0]) != 4 {
		return "", CalverParts{}, false
	}
	year, ok := parseUint(parts[0])
	if !ok || !yearInRange(year, opts) {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYYYMM, CalverParts{Year: year, Month: month}, true
}

func matchYYYYMMMicro(core string, opts Options) (string, CalverParts, bool) {
	parts := strings.Split(core, ".")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return "", CalverParts{}, false
	}
	year, ok := parseUint(parts[0])
	if !ok || !yearInRange(year, opts) {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return "", CalverParts{}, false
	}
	micro, ok := parseUint(parts[2])
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYYYMMMicro, CalverParts{Year: year, Month: month, Micro: &micro}, true
}

func matchYYYYMMDD(core string, opts Options) (string, CalverParts, bool) {
	parts := strings.Split(core, "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return "", CalverParts{}, false
	}
	year, ok := parseUint(parts[0])
	if !ok || !yearInRange(year, opts) {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return "", CalverParts{}, false
	}
	day, ok := parseDay(parts[2])
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYYYMMDD, CalverParts{Year: year, Month: month, Day: &day}, true
}

// matchCompactDate accepts YYYYMMDD with an optional ".MICRO" suffix.
func matchCompactDate(core string, opts Options) (string, CalverParts, bool) {
	date, microText, hasMicro := strings.Cut(core, ".")
	if len(date) != 8 || strings.IndexFunc(date, func(r rune) bool { return !isASCIIDigit(r) }) >= 0 {
		return "", CalverParts{}, false
	}
	year, ok := parseUint(date[0:4])
	if !ok || !yearInRange(year, opts) {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(date[4:6])
	if !ok {
		return "", CalverParts{}, false
	}
	day, ok := parseDay(date[6:8])
	if !ok {
		return "", CalverParts{}, false
	}
	if !hasMicro {
		return SchemeYYYYMMDDPlain, CalverParts{Year: year, Month: month, Day: &day}, true
	}
	micro, ok := parseUint(microText)
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYYYMMDDMicro, CalverParts{Year: year, Month: month, Day: &day, Micro: &micro}, true
}

// Two-digit years are not checked against YearMin/YearMax.
func matchYYMM(core string, _ Options) (string, CalverParts, bool) {
	parts := strings.Split(core, ".")
	if len(parts) != 2 || len(parts[0]) != 2 {
		return "", CalverParts{}, false
	}
	yy, ok := parseUint(parts[0])
	if !ok {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYMM, CalverParts{Year: 2000 + yy, Month: month}, true
}

func matchYYMMMicro(core string, _ Options) (string, CalverParts, bool) {
	parts := strings.Split(core, ".")
	if len(parts) != 3 || len(parts[0]) != 2 {
		return "", CalverParts{}, false
	}
	yy, ok := parseUint(parts[0])
	if !ok {
		return "", CalverParts{}, false
	}
	month, ok := parseMonth(parts[1])
	if !ok {
		return "", CalverParts{}, false
	}
	micro, ok := parseUint(parts[2])
	if !ok {
		return "", CalverParts{}, false
	}
	return SchemeYYMMMicro, CalverParts{Year: 2000 + yy, Month: month, Micro: &micro}, true
}

func yearInRange(year int, opts Options) bool {
	return year >= opts.YearMin && year <= opts.YearMax
}

func parseMonth(s string) (int, bool) {
	month, ok := parseUint(s)
	if !ok || month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

func parseDay(s string) (int, bool) {
	day, ok := parseUint(s)
	if !ok || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

// parseUint accepts only plain decimal digits that fit in 32 bits.
func parseUint(s string) (int, bool) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !isASCIIDigit(r) }) >= 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
