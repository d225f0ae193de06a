// Package prefs persists per-user dashboard layout preferences between runs.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs are the layout settings remembered across sessions.
type Prefs struct {
	// ColumnWidths maps table column keys to character widths. Columns not
	// listed use the built-in defaults.
	ColumnWidths map[string]int `yaml:"column_widths,omitempty"`
	// FormCollapsed hides the entry form panel.
	FormCollapsed bool `yaml:"form_collapsed"`
	// PageSize is the last selected rows-per-page value. Zero means default.
	PageSize int `yaml:"page_size,omitempty"`
}

// DefaultPath returns the preferences file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "enrolldesk", "prefs.yaml"), nil
}

// Load reads preferences from path. A missing file yields zero-value
// preferences, not an error.
func Load(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Prefs{}, nil
		}
		return nil, err
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p *Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
