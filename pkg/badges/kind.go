package badges

import "strings"

type Kind string

const (
	KindGitHubActions   Kind = "github_actions"
	KindNpmVersion      Kind = "npm_version"
	KindNpmDownloads    Kind = "npm_downloads"
	KindCratesVersion   Kind = "crates_version"
	KindCratesDownloads Kind = "crates_downloads"
	KindLicense         Kind = "license"
	KindGitHubRelease   Kind = "github_release"
	KindCoverage        Kind = "coverage"
	KindDocs            Kind = "docs"
	KindUnknown         Kind = "unknown"
)

const (
	shieldsNpmVersion      = "img.shields.io/npm/v/"
	shieldsCratesVersion   = "img.shields.io/crates/v/"
	shieldsCratesDownloads = "img.shields.io/crates/d/"
	shieldsLicense         = "img.shields.io/github/license/"
	shieldsRelease         = "img.shields.io/github/v/release/"
	shieldsCodecov         = "img.shields.io/codecov/c/github/"
	shieldsCustom          = "img.shields.io/badge/"
)

var shieldsNpmDownloads = []string{
	"img.shields.io/npm/dw/",
	"img.shields.io/npm/dm/",
	"img.shields.io/npm/dt/",
}

// inferKind classifies an image URL. The first matching rule wins.
func inferKind(image string, raw string) (Kind, string, map[string]string) {
	image = strings.TrimSpace(image)
	if !isHTTPURL(image) {
		return KindUnknown, UnknownID(raw), nil
	}

	if strings.Contains(image, "/actions/workflows/") && strings.Contains(image, "/badge.svg") {
		_, rest, _ := strings.Cut(image, "/actions/workflows/")
		file, _, _ := strings.Cut(rest, "/")
		if file == "" {
			return KindGitHubActions, UnknownID(raw), nil
		}
		return KindGitHubActions, "ci:" + file, map[string]string{"workflow_file": file}
	}
	if pkg, ok := extractAfterPrefix(image, shieldsNpmVersion); ok {
		return KindNpmVersion, "npm:" + pkg, map[string]string{"package": pkg}
	}
	for _, prefix := range shieldsNpmDownloads {
		if pkg, ok := extractAfterPrefix(image, prefix); ok {
			return KindNpmDownloads, "npm_downloads:" + pkg, map[string]string{"package": pkg}
		}
	}
	if name, ok := extractAfterPrefix(image, shieldsCratesVersion); ok {
		return KindCratesVersion, "crates:" + name, map[string]string{"crate": name}
	}
	if name, ok := extractAfterPrefix(image, shieldsCratesDownloads); ok {
		return KindCratesDownloads, "crates_downloads:" + name, map[string]string{"crate": name}
	}
	if strings.Contains(image, shieldsLicense) {
		return KindLicense, "license:github", nil
	}
	if strings.Contains(image, shieldsRelease) {
		return KindGitHubRelease, "release:github", nil
	}
	if owner, repo, ok := extractCodecovRepo(image); ok {
		return KindCoverage, "coverage:codecov", map[string]string{"owner": owner, "repo": repo}
	}
	if label, message, ok := extractCustomBadge(image); ok && strings.EqualFold(label, "docs") {
		return KindDocs, "docs:custom", map[string]string{"label": label, "message": message}
	}
	return KindUnknown, UnknownID(raw), nil
}

func isHTTPURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// beforeQuery returns the part of the text after prefix and before any
// query string.
func beforeQuery(image string, prefix string) (string, bool) {
	pos := strings.Index(image, prefix)
	if pos < 0 {
		return "", false
	}
	rest, _, _ := strings.Cut(image[pos+len(prefix):], "?")
	return rest, true
}

func trimSVG(s string) string {
	for strings.HasSuffix(s, ".svg") {
		s = strings.TrimSuffix(s, ".svg")
	}
	return s
}

func extractAfterPrefix(image string, prefix string) (string, bool) {
	rest, ok := beforeQuery(image, prefix)
	if !ok {
		return "", false
	}
	rest = trimSVG(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

func extractCodecovRepo(image string) (string, string, bool) {
	rest, ok := beforeQuery(image, shieldsCodecov)
	if !ok {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	owner := parts[0]
	repo := trimSVG(parts[1])
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

func extractCustomBadge(image string) (string, string, bool) {
	rest, ok := beforeQuery(image, shieldsCustom)
	if !ok {
		return "", "", false
	}
	parts := strings.Split(rest, "-")
	label := parts[0]
	message := ""
	if len(parts) > 1 {
		message = parts[1]
	}
	if label == "" {
		return "", "", false
	}
	return label, message, true
}
