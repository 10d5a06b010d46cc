package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chimeio/chime/cmd/chime/cli/jsonutil"
)

// Backup maps a managed event name to that event's raw hook groups, exactly
// as they appeared under "hooks" in the settings document.
type Backup map[string]json.RawMessage

// BackupStore holds the previously-active managed hook entries so a disable
// can be undone. The file is a single-generation snapshot: every write
// replaces it wholesale, there is no history.
type BackupStore struct {
	Path string
}

// Read returns the stored snapshot, or nil when there is none. A snapshot
// that cannot be parsed is treated as absent: restore degrades to a no-op
// instead of failing the whole operation over a scratch file.
func (s *BackupStore) Read() Backup {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil
	}
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil
	}
	if len(b) == 0 {
		return nil
	}
	return b
}

// Write persists the snapshot with the same durability contract as the
// settings store.
func (s *BackupStore) Write(b Backup) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o750); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}
	data, err := jsonutil.MarshalIndentWithNewline(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling backup: %w", err)
	}
	//nolint:gosec // G306: backup holds hook config, not secrets
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}

// Delete removes the snapshot. A missing file is not an error.
func (s *BackupStore) Delete() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing backup file: %w", err)
	}
	return nil
}
