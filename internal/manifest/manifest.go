package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type PackageJSON struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	License     string     `json:"license"`
	Repository  Repository `json:"repository"`
}

// Repository accepts both the string and the {"url": ...} forms of the
// package.json repository field.
type Repository struct {
	URL string
}

func (r *Repository) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("repository must be a string or an object with url: %w", err)
	}
	r.URL = obj.URL
	return nil
}

type MoonMod struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Readme  string `json:"readme"`
}

type CargoToml struct {
	Package *CargoPackage `toml:"package"`
}

type CargoPackage struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	License     string `toml:"license"`
	Repository  string `toml:"repository"`
}

func ReadPackageJSON(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pkg := &PackageJSON{}
	if err := json.Unmarshal(data, pkg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return pkg, nil
}

func ReadMoonMod(path string) (*MoonMod, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod := &MoonMod{}
	if err := json.Unmarshal(data, mod); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return mod, nil
}

func ReadCargoToml(path string) (*CargoToml, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest := &CargoToml{}
	if err := toml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return manifest, nil
}
