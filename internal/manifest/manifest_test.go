package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadPackageJSON(t *testing.T) {
	tt := []struct {
		name     string
		content  string
		wantRepo string
		wantErr  bool
	}{
		{"string repository", `{"name":"@scope/pkg","version":"1.2.3","repository":"github:o/r"}`, "github:o/r", false},
		{"object repository", `{"name":"@scope/pkg","version":"1.2.3","repository":{"type":"git","url":"git+https://github.com/o/r.git"}}`, "git+https://github.com/o/r.git", false},
		{"no repository", `{"name":"@scope/pkg","version":"1.2.3"}`, "", false},
		{"invalid repository", `{"name":"@scope/pkg","repository":42}`, "", true},
		{"invalid json", `{"name":`, "", true},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			pkg, err := ReadPackageJSON(writeFile(t, "package.json", tc.content))
			if (err != nil) != tc.wantErr {
				t.Fatalf("ReadPackageJSON() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if pkg.Name != "@scope/pkg" || pkg.Version != "1.2.3" {
				t.Errorf("unexpected package %+v", pkg)
			}
			if pkg.Repository.URL != tc.wantRepo {
				t.Errorf("Repository = %q, want %q", pkg.Repository.URL, tc.wantRepo)
			}
		})
	}
}

func TestReadMoonMod(t *testing.T) {
	mod, err := ReadMoonMod(writeFile(t, "moon.mod.json", `{"name":"user/mod","version":"0.1.0","readme":"README.mbt.md"}`))
	if err != nil {
		t.Fatalf("ReadMoonMod() error = %v", err)
	}
	if mod.Name != "user/mod" || mod.Version != "0.1.0" || mod.Readme != "README.mbt.md" {
		t.Errorf("unexpected module %+v", mod)
	}
}

func TestReadCargoToml(t *testing.T) {
	content := `
[package]
name = "bdg"
version = "2026.1.0"
license = "MIT"
repository = "https://github.com/o/r"

[dependencies]
anyhow = "1"
`
	manifest, err := ReadCargoToml(writeFile(t, "Cargo.toml", content))
	if err != nil {
		t.Fatalf("ReadCargoToml() error = %v", err)
	}
	if manifest.Package == nil {
		t.Fatal("expected a package table")
	}
	if manifest.Package.Name != "bdg" || manifest.Package.Version != "2026.1.0" || manifest.Package.Repository != "https://github.com/o/r" {
		t.Errorf("unexpected package %+v", manifest.Package)
	}

	workspace, err := ReadCargoToml(writeFile(t, "Cargo.toml", "[workspace]\nmembers = [\"a\"]\n"))
	if err != nil {
		t.Fatalf("ReadCargoToml() error = %v", err)
	}
	if workspace.Package != nil {
		t.Error("workspace manifest should have no package")
	}

	if _, err := ReadCargoToml(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
