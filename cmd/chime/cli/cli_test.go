package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chimeio/chime/cmd/chime/cli/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv points chime at a scratch config dir and disables prompts.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	t.Setenv("CHIME_TEST_TTY", "0")
	return dir
}

// writeTempSound creates a real audio file for --sound to resolve.
func writeTempSound(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ding.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	return path
}

// runChime executes the root command with args, capturing output.
func runChime(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSetupCmd_UnknownEventListsAvailable(t *testing.T) {
	setupTestEnv(t)

	out, err := runChime(t, "setup", "Stpo")
	require.Error(t, err)
	var silent *SilentError
	require.ErrorAs(t, err, &silent)
	assert.Contains(t, out, `Unknown event "Stpo"`)
	assert.Contains(t, out, "Stop    (default)")
	assert.Contains(t, out, "SubagentStop")
}

func TestSetupCmd_InstallsHooks(t *testing.T) {
	dir := setupTestEnv(t)
	sound := writeTempSound(t)

	out, err := runChime(t, "setup", "Stop", "--sound", sound, "--notify=false")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Stop hook installed")

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "hooks")
	assert.Contains(t, string(doc["hooks"]), "ding.wav")
}

func TestSetupCmd_SoundNotFound(t *testing.T) {
	setupTestEnv(t)

	out, err := runChime(t, "setup", "Stop", "--sound", "/definitely/not/here.wav")
	require.Error(t, err)
	var silent *SilentError
	require.ErrorAs(t, err, &silent)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "/definitely/not/here.wav")
}

func TestDisableEnableCycle(t *testing.T) {
	dir := setupTestEnv(t)
	sound := writeTempSound(t)

	_, err := runChime(t, "setup", "Stop", "--sound", sound)
	require.NoError(t, err)

	out, err := runChime(t, "disable")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Notifications disabled (Stop)")

	// Backup exists, hooks gone.
	_, err = os.Stat(filepath.Join(dir, "chime-hooks.backup.json"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ding.wav")

	out, err = runChime(t, "enable")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Notifications enabled (Stop)")

	data, err = os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ding.wav")
}

func TestEnableCmd_NoBackup(t *testing.T) {
	setupTestEnv(t)

	out, err := runChime(t, "enable")
	require.NoError(t, err)
	assert.Contains(t, out, "no backup found")
}

func TestDisableCmd_NothingConfigured(t *testing.T) {
	setupTestEnv(t)

	out, err := runChime(t, "disable")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to disable")
}

func TestRemoveCmd_DropsBackup(t *testing.T) {
	dir := setupTestEnv(t)
	sound := writeTempSound(t)

	_, err := runChime(t, "setup", "Stop", "--sound", sound)
	require.NoError(t, err)
	_, err = runChime(t, "disable")
	require.NoError(t, err)
	_, err = runChime(t, "enable")
	require.NoError(t, err)

	out, err := runChime(t, "remove", "Stop", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Stop hooks removed")

	_, err = os.Stat(filepath.Join(dir, "chime-hooks.backup.json"))
	assert.True(t, os.IsNotExist(err))

	out, err = runChime(t, "enable")
	require.NoError(t, err)
	assert.Contains(t, out, "no backup found")
}

func TestStatusCmd_States(t *testing.T) {
	setupTestEnv(t)
	sound := writeTempSound(t)

	out, err := runChime(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not configured")

	_, err = runChime(t, "setup", "Stop", "--sound", sound)
	require.NoError(t, err)

	out, err = runChime(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled")
	assert.Contains(t, out, "Stop")
	assert.Contains(t, out, "ding.wav")

	_, err = runChime(t, "disable")
	require.NoError(t, err)

	out, err = runChime(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Disabled")
	assert.Contains(t, out, "chime enable")
}

func TestSetupCmd_PreservesForeignSettings(t *testing.T) {
	dir := setupTestEnv(t)
	sound := writeTempSound(t)

	original := `{"model": "opus", "permissions": {"allow": ["Read"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(original), 0o644))

	_, err := runChime(t, "setup", "Stop", "--sound", sound, "--notify=false")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, json.RawMessage(`"opus"`), doc["model"])
	assert.Contains(t, doc, "permissions")
}

func TestSetupCmd_MalformedSettingsFails(t *testing.T) {
	dir := setupTestEnv(t)
	sound := writeTempSound(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{broken"), 0o644))

	_, err := runChime(t, "setup", "Stop", "--sound", sound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")

	// The broken file was not overwritten.
	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestSilentError_Unwraps(t *testing.T) {
	inner := assert.AnError
	err := NewSilentError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, inner.Error(), err.Error())
}

func TestCanPromptInteractively_TestOverride(t *testing.T) {
	t.Setenv("CHIME_TEST_TTY", "0")
	assert.False(t, canPromptInteractively())

	t.Setenv("CHIME_TEST_TTY", "1")
	assert.True(t, canPromptInteractively())
}

func TestUnknownEventListing_Format(t *testing.T) {
	var buf strings.Builder
	printUnknownEventError(&buf, "Nope")
	out := buf.String()
	assert.Contains(t, out, "Usage: chime setup [event]")
	for _, ev := range []string{"SessionStart", "PreCompact", "SessionEnd"} {
		assert.Contains(t, out, ev)
	}
}
