package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest — содержимое snirk.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
	Lints   LintsSection   `toml:"lints"`
}

// PackageSection describes the [package] section.
type PackageSection struct {
	Name string `toml:"name"`
}

// CheckSection describes the [check] section.
type CheckSection struct {
	MaxDiagnostics int  `toml:"max-diagnostics"`
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
}

// LintsSection toggles individual lints; everything is on by default.
type LintsSection struct {
	UnusedVariable bool `toml:"unused-variable"`
	UnusedMutable  bool `toml:"unused-mutable"`
}

// DefaultManifest returns the configuration used without a snirk.toml.
func DefaultManifest() Manifest {
	return Manifest{
		Check: CheckSection{
			MaxDiagnostics: 100,
			Jobs:           0, // 0 — по числу CPU
			Cache:          true,
		},
		Lints: LintsSection{
			UnusedVariable: true,
			UnusedMutable:  true,
		},
	}
}

// LoadManifest parses a snirk.toml; sections the file omits keep their
// defaults.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Manifest{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if m.Check.MaxDiagnostics < 0 {
		return Manifest{}, fmt.Errorf("%s: check.max-diagnostics must be non-negative", path)
	}
	return m, nil
}

// Discover walks up from startDir and loads the nearest manifest,
// falling back to defaults when there is none.
func Discover(startDir string) (Manifest, string, error) {
	path, ok, err := FindSnirkToml(startDir)
	if err != nil {
		return Manifest{}, "", err
	}
	if !ok {
		return DefaultManifest(), "", nil
	}
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, "", err
	}
	return m, path, nil
}
