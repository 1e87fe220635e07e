package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	tt := []struct {
		name     string
		key      string
		fallback string
		setEnv   bool
		envValue string
		expected string
	}{
		{
			name:     "environment variable set",
			key:      "BDG_TEST_ENV",
			fallback: "fallback",
			setEnv:   true,
			envValue: "test_value",
			expected: "test_value",
		},
		{
			name:     "environment variable not set",
			key:      "BDG_TEST_ENV",
			fallback: "fallback",
			setEnv:   false,
			expected: "fallback",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setEnv {
				t.Setenv(tc.key, tc.envValue)
			}

			got := getEnv(tc.key, tc.fallback)
			if got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestIgnoreError(t *testing.T) {
	got := ignoreError(parseBool("maybe"))
	if got {
		t.Error("expected zero value for an invalid boolean")
	}
	if got := ignoreError(parseBool("1")); !got {
		t.Error("expected true for 1")
	}
}

func TestParseBool(t *testing.T) {
	tt := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"1", true, false},
		{"TRUE", true, false},
		{" yes ", true, false},
		{"0", false, false},
		{"", false, false},
		{"no", false, false},
		{"maybe", false, true},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseBool(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseBool(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("parseBool(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestBuffersFlush(t *testing.T) {
	bufs := buffers{warning: bytes.NewBufferString("WARN\n"), info: bytes.NewBufferString("DEBUG\n")}
	var out bytes.Buffer
	bufs.flush(&out, false)
	if out.String() != "WARN\n" {
		t.Errorf("expected only warnings, got %q", out.String())
	}

	bufs = buffers{warning: bytes.NewBufferString("WARN\n"), info: bytes.NewBufferString("DEBUG\n")}
	out.Reset()
	bufs.flush(&out, true)
	if out.String() != "WARN\nDEBUG\n" {
		t.Errorf("expected warnings then debug output, got %q", out.String())
	}
}

const npmLine = "[![npm](https://img.shields.io/npm/v/demo.svg)](https://www.npmjs.com/package/demo)"

func setupProject(t *testing.T, readme string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"package.json": `{"name": "demo", "version": "1.0.0"}`,
		"README.md":    readme,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func withStdin(t *testing.T, input string, piped bool) {
	t.Helper()
	oldStdin, oldPiped := stdin, stdinPiped
	t.Cleanup(func() {
		stdin, stdinPiped = oldStdin, oldPiped
	})
	stdin = strings.NewReader(input)
	stdinPiped = func() bool { return piped }
}

func readReadme(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRunAddDryRun(t *testing.T) {
	dir := setupProject(t, "# Demo\n")
	withStdin(t, "", false)

	var stdout, stderr bytes.Buffer
	code := run([]string{"bdg", "-C", dir, "add", "--dry-run", "--only", "version"}, &stdout, &stderr)
	if code != exitPending {
		t.Fatalf("expected exit code %d, got %d (stderr: %s)", exitPending, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "+"+npmLine) {
		t.Errorf("expected diff on stdout, got:\n%s", stdout.String())
	}
	if got := readReadme(t, dir); got != "# Demo\n" {
		t.Errorf("dry run changed README: %q", got)
	}
}

func TestRunAddWithPipedBadges(t *testing.T) {
	dir := setupProject(t, "# Demo\n")
	withStdin(t, "\n  ![docs](https://docs.rs/demo/badge.svg)  \n", true)

	var stdout, stderr bytes.Buffer
	code := run([]string{"bdg", "-C", dir, "add", "--only", "version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	expected := "# Demo\n<!-- bdg:begin -->\n" + npmLine + "\n![docs](https://docs.rs/demo/badge.svg)\n<!-- bdg:end -->\n"
	if got := readReadme(t, dir); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	// a second dry run has nothing pending
	withStdin(t, "", false)
	stdout.Reset()
	code = run([]string{"bdg", "-C", dir, "add", "--dry-run", "--only", "version"}, &stdout, &stderr)
	if code != 0 {
		t.Errorf("expected exit code 0 without pending changes, got %d", code)
	}
}

func TestRunRemove(t *testing.T) {
	dir := setupProject(t, "# Demo\n<!-- bdg:begin -->\n"+npmLine+"\n<!-- bdg:end -->\n")
	withStdin(t, "", false)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"bdg", "-C", dir, "remove"}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 without a selector, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Error: nothing to remove") {
		t.Errorf("expected error on stderr, got %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"bdg", "-C", dir, "remove", "--id", "npm:demo"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if got := readReadme(t, dir); got != "# Demo\n" {
		t.Errorf("expected block to be removed, got %q", got)
	}
	if !strings.Contains(stdout.String(), "Removed 1 badges from") {
		t.Errorf("expected summary, got %q", stdout.String())
	}
}

func TestRunListJSON(t *testing.T) {
	dir := setupProject(t, "# Demo\n<!-- bdg:begin -->\n"+npmLine+"\n<!-- bdg:end -->\n")
	withStdin(t, "", false)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"bdg", "-C", dir, "list", "--json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	var payload struct {
		Schema      string `json:"schema"`
		ReadmeBlock struct {
			Badges []struct {
				ID string `json:"id"`
			} `json:"badges"`
		} `json:"readme_block"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
	}
	if payload.Schema != "bdg.list/v1" {
		t.Errorf("unexpected schema %q", payload.Schema)
	}
	if len(payload.ReadmeBlock.Badges) != 1 || payload.ReadmeBlock.Badges[0].ID != "npm:demo" {
		t.Errorf("unexpected badges %+v", payload.ReadmeBlock.Badges)
	}
}

func TestRunFlags(t *testing.T) {
	tt := []struct {
		name string
		args []string
		want string
	}{
		{"list", []string{"list"}, "Marker block: missing"},
		{"verbose short flag", []string{"-v", "list"}, "Badges: 0"},
		{"version short flag", []string{"-V"}, "v0.1.0.dev"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			withStdin(t, "", false)

			var stdout, stderr bytes.Buffer
			args := append([]string{"bdg", "-C", dir}, tc.args...)
			if code := run(args, &stdout, &stderr); code != 0 {
				t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tc.want) {
				t.Errorf("expected %q in output, got:\n%s", tc.want, stdout.String())
			}
		})
	}
}
