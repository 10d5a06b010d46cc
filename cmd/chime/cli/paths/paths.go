// Package paths resolves the fixed per-user file locations chime works with.
// Every document lives under the Claude Code configuration directory, which
// is ~/.claude unless CLAUDE_CONFIG_DIR points somewhere else.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the Claude Code configuration directory. Claude Code
// honors the same variable, so chime follows it to stay on the same file.
const EnvConfigDir = "CLAUDE_CONFIG_DIR"

const (
	// SettingsFileName is the shared settings document owned by Claude Code.
	SettingsFileName = "settings.json"
	// BackupFileName holds the single-generation snapshot of chime-managed hooks.
	BackupFileName = "chime-hooks.backup.json"
	// StateFileName is chime's own record: telemetry consent and per-event choices.
	StateFileName = "chime.json"
)

// ConfigDir returns the Claude Code configuration directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// SettingsFile returns the absolute path of the shared settings document.
func SettingsFile() (string, error) {
	return inConfigDir(SettingsFileName)
}

// BackupFile returns the absolute path of the hook backup snapshot.
func BackupFile() (string, error) {
	return inConfigDir(BackupFileName)
}

// StateFile returns the absolute path of chime's own state file.
func StateFile() (string, error) {
	return inConfigDir(StateFileName)
}

func inConfigDir(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
