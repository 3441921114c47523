package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// StateFileName is the per-artifact generation state record. It lives inside
// the artifact directory and is excluded from packaged archives.
const StateFileName = ".generation-state.json"

// State is the persisted per-artifact generation record. It reflects exactly
// the inputs that produced the currently present rendered output; staleness
// is a mismatch between the current inputs and this record.
type State struct {
	// Assets is the sorted list of asset filenames seen at last render.
	Assets []string `json:"assets"`

	// Fingerprint is the format configuration fingerprint at last render.
	Fingerprint string `json:"fingerprint"`

	// TemplateType is the template type used at last render.
	TemplateType string `json:"templateType"`

	// GeneratedAt is the time of the last render.
	GeneratedAt time.Time `json:"generatedAt"`
}

// LoadState reads the persisted state record of an artifact directory.
// A missing or unparseable record returns (nil, nil): a record that cannot
// prove freshness must force a re-render, not abort the run.
func LoadState(dir string) (*State, error) {
	data, err := os.ReadFile(filepath.Join(dir, StateFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read generation state in %s: %w", dir, err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

// Save persists the state record into the artifact directory.
func (s *State) Save(dir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal generation state: %w", err)
	}
	path := filepath.Join(dir, StateFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write generation state %s: %w", path, err)
	}
	return nil
}
