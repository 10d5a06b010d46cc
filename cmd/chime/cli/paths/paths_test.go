package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDir_DefaultsToHomeClaude(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".claude") {
		t.Errorf("expected ~/.claude, got %q", dir)
	}
}

func TestConfigDir_HonorsOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/claude")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/custom/claude" {
		t.Errorf("expected override, got %q", dir)
	}
}

func TestFilePaths_LiveInConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/claude")

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"settings", SettingsFile, "/custom/claude/settings.json"},
		{"backup", BackupFile, "/custom/claude/chime-hooks.backup.json"},
		{"state", StateFile, "/custom/claude/chime.json"},
	}
	for _, tt := range tests {
		got, err := tt.fn()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != filepath.FromSlash(tt.want) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}
