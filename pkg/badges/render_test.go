package badges

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarkdown(t *testing.T) {
	tt := []struct {
		badge Badge
		want  string
	}{
		{ForNpm("bdg"), "[![npm](https://img.shields.io/npm/v/bdg.svg)](https://www.npmjs.com/package/bdg)"},
		{ForCrates("bdg"), "[![crates.io](https://img.shields.io/crates/v/bdg.svg)](https://crates.io/crates/bdg)"},
		{ForMoonbit("user/mod"), "![moonbit](https://img.shields.io/badge/moonbit-user/mod-informational)"},
		{ForLicense("o", "r"), "[![license](https://img.shields.io/github/license/o/r.svg)](https://github.com/o/r)"},
		{ForWorkflow("o", "r", "ci.yml"), "[![CI](https://github.com/o/r/actions/workflows/ci.yml/badge.svg)](https://github.com/o/r/actions/workflows/ci.yml)"},
	}
	for _, tc := range tt {
		if got := tc.badge.Markdown(); got != tc.want {
			t.Errorf("Markdown() = %s, want %s", got, tc.want)
		}
	}
}

func TestRenderedBadgesParseBack(t *testing.T) {
	tt := []struct {
		badge Badge
		kind  Kind
		id    string
	}{
		{ForNpm("@scope/pkg"), KindNpmVersion, "npm:@scope/pkg"},
		{ForCrates("bdg"), KindCratesVersion, "crates:bdg"},
		{ForLicense("o", "r"), KindLicense, "license:github"},
		{ForWorkflow("o", "r", "release.yaml"), KindGitHubActions, "ci:release.yaml"},
	}
	for _, tc := range tt {
		got := Parse(tc.badge.Markdown())
		if got.Kind != tc.kind || got.ID != tc.id {
			t.Errorf("Parse(%s) = %s %s, want %s %s", tc.badge.Markdown(), got.Kind, got.ID, tc.kind, tc.id)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	list := []Badge{ForNpm("a"), ForLicense("o", "r"), ForWorkflow("o", "r", "ci.yml")}

	if got := FilterByCategory(list, nil); len(got) != 3 {
		t.Errorf("empty filter should keep all badges, got %d", len(got))
	}

	got := FilterByCategory(list, []string{" CI ", "License"})
	want := []Badge{ForLicense("o", "r"), ForWorkflow("o", "r", "ci.yml")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterByCategory mismatch (-want +got):\n%s", diff)
	}

	if got := FilterByCategory(list, []string{"docs"}); len(got) != 0 {
		t.Errorf("unmatched filter should drop everything, got %d", len(got))
	}
}

func TestRecommended(t *testing.T) {
	release := Badge{Category: CategoryRelease, Label: "release", ImageURL: "https://img.shields.io/github/v/release/o/r"}
	list := []Badge{
		ForNpm("a"),
		ForCrates("b"),
		ForMoonbit("c"),
		ForLicense("o", "r"),
		ForWorkflow("o", "r", "ci.yml"),
		ForWorkflow("o", "r", "release.yml"),
		release,
	}
	want := []Badge{
		ForNpm("a"),
		ForCrates("b"),
		ForMoonbit("c"),
		ForLicense("o", "r"),
		ForWorkflow("o", "r", "ci.yml"),
	}
	if diff := cmp.Diff(want, Recommended(list)); diff != "" {
		t.Errorf("Recommended mismatch (-want +got):\n%s", diff)
	}
	if got := Recommended(nil); len(got) != 0 {
		t.Errorf("Recommended(nil) = %v", got)
	}
}
