package hooks

import (
	"encoding/json"
	"fmt"

	"github.com/chimeio/chime/cmd/chime/cli/notify"
	"github.com/chimeio/chime/cmd/chime/cli/paths"
	"github.com/chimeio/chime/cmd/chime/cli/settings"
	"github.com/chimeio/chime/cmd/chime/cli/state"
)

// Manager orchestrates the hook operations over the shared settings
// document and the backup snapshot. It holds no document state between
// calls: every operation re-reads the files it needs, so concurrent edits
// by Claude Code or another chime invocation are last-write-wins rather
// than silently clobbered from a stale cache.
type Manager struct {
	Settings *settings.Store
	Backup   *settings.BackupStore
	State    *state.Store
	Platform notify.Platform
}

// NewManager wires a manager against the fixed per-user document paths.
func NewManager(p notify.Platform) (*Manager, error) {
	settingsPath, err := paths.SettingsFile()
	if err != nil {
		return nil, err
	}
	backupPath, err := paths.BackupFile()
	if err != nil {
		return nil, err
	}
	statePath, err := paths.StateFile()
	if err != nil {
		return nil, err
	}
	return &Manager{
		Settings: &settings.Store{Path: settingsPath},
		Backup:   &settings.BackupStore{Path: backupPath},
		State:    &state.Store{Path: statePath},
		Platform: p,
	}, nil
}

// Setup installs the hook entries for event, replacing whatever chime or
// the user had configured for that event. The currently active managed
// hooks are snapshotted first, so a later enable can still restore the
// state that existed before this setup. soundPath must already be resolved.
func (m *Manager) Setup(event, soundPath string, desktopNotify bool) error {
	if !IsManaged(event) {
		return fmt.Errorf("unmanaged event %q", event)
	}

	if _, err := m.backupAll(); err != nil {
		return err
	}

	doc, err := m.Settings.Read()
	if err != nil {
		return err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return err
	}

	groups := []HookGroup{{Hooks: BuildEntries(m.Platform, soundPath, desktopNotify)}}
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("marshaling hook entries: %w", err)
	}
	hooks[event] = raw

	if err := doc.SetHooks(hooks); err != nil {
		return err
	}
	if err := m.Settings.Write(doc); err != nil {
		return err
	}

	// Best effort: the sidecar record only spares status from pattern
	// matching, the settings document stays authoritative.
	st := m.State.Load()
	st.SetEvent(event, state.EventRecord{Sound: soundPath, Notify: desktopNotify})
	_ = m.State.Save(st)

	return nil
}

// EnableResult reports what an enable call restored.
type EnableResult struct {
	// NoBackup means there is no snapshot to restore from.
	NoBackup bool
	// NotFound means a specific event was requested but the snapshot has
	// no entry for it.
	NotFound bool
	// Restored lists the managed events copied back into the settings
	// document.
	Restored []string
}

// Enable restores hook entries from the backup snapshot. With an empty
// event every backed-up event is merged back, the snapshot winning
// conflicts; with a named event only that entry is copied. The snapshot
// itself stays in place, which is what makes repeated enables idempotent.
// Missing backup and missing entries are reported outcomes, not errors,
// and cause no write.
func (m *Manager) Enable(event string) (EnableResult, error) {
	if event != "" && !IsManaged(event) {
		return EnableResult{}, fmt.Errorf("unmanaged event %q", event)
	}

	backup := m.Backup.Read()
	if backup == nil {
		return EnableResult{NoBackup: true}, nil
	}

	doc, err := m.Settings.Read()
	if err != nil {
		return EnableResult{}, err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return EnableResult{}, err
	}

	var res EnableResult
	if event != "" {
		raw, ok := backup[event]
		if !ok {
			return EnableResult{NotFound: true}, nil
		}
		hooks[event] = raw
		res.Restored = []string{event}
	} else {
		for _, ev := range Events() {
			if raw, ok := backup[ev]; ok {
				hooks[ev] = raw
				res.Restored = append(res.Restored, ev)
			}
		}
	}

	if err := doc.SetHooks(hooks); err != nil {
		return EnableResult{}, err
	}
	if err := m.Settings.Write(doc); err != nil {
		return EnableResult{}, err
	}
	return res, nil
}

// DisableResult reports what a disable call removed.
type DisableResult struct {
	// NothingConfigured means no managed event had hooks to disable.
	NothingConfigured bool
	// NotFound means a specific event was requested but had no hooks.
	// A snapshot of the other active events has still been taken.
	NotFound bool
	// Disabled lists the managed events removed from the settings document.
	Disabled []string
}

// Disable removes managed hook entries, snapshotting everything active
// first so enable can put it back. Disabling a single event still
// snapshots all active events: the backup is a whole-state restore point,
// not a per-event diff, and the snapshot replaces any previous one.
func (m *Manager) Disable(event string) (DisableResult, error) {
	if event != "" && !IsManaged(event) {
		return DisableResult{}, fmt.Errorf("unmanaged event %q", event)
	}

	doc, err := m.Settings.Read()
	if err != nil {
		return DisableResult{}, err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return DisableResult{}, err
	}

	var active []string
	for _, ev := range Events() {
		if _, ok := hooks[ev]; ok {
			active = append(active, ev)
		}
	}
	if len(active) == 0 {
		return DisableResult{NothingConfigured: true}, nil
	}

	if err := m.snapshot(hooks); err != nil {
		return DisableResult{}, err
	}

	var res DisableResult
	if event != "" {
		if _, ok := hooks[event]; !ok {
			return DisableResult{NotFound: true}, nil
		}
		delete(hooks, event)
		res.Disabled = []string{event}
	} else {
		for _, ev := range active {
			delete(hooks, ev)
		}
		res.Disabled = active
	}

	if err := doc.SetHooks(hooks); err != nil {
		return DisableResult{}, err
	}
	if err := m.Settings.Write(doc); err != nil {
		return DisableResult{}, err
	}
	return res, nil
}

// RemoveResult reports the outcome of a remove call.
type RemoveResult struct {
	// NotFound means the event had no hooks; nothing was touched.
	NotFound bool
}

// Remove deletes the event's hooks and resets the restore point entirely.
// Dropping the whole backup is deliberate: after a remove chime considers
// nothing restorable, for any event.
func (m *Manager) Remove(event string) (RemoveResult, error) {
	if !IsManaged(event) {
		return RemoveResult{}, fmt.Errorf("unmanaged event %q", event)
	}

	doc, err := m.Settings.Read()
	if err != nil {
		return RemoveResult{}, err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return RemoveResult{}, err
	}

	if _, ok := hooks[event]; !ok {
		return RemoveResult{NotFound: true}, nil
	}
	delete(hooks, event)

	if err := doc.SetHooks(hooks); err != nil {
		return RemoveResult{}, err
	}
	if err := m.Backup.Delete(); err != nil {
		return RemoveResult{}, err
	}
	if err := m.Settings.Write(doc); err != nil {
		return RemoveResult{}, err
	}

	st := m.State.Load()
	st.DeleteEvent(event)
	_ = m.State.Save(st)

	return RemoveResult{}, nil
}

// backupAll snapshots every managed event currently present in the settings
// document. The snapshot replaces any previous one; an empty snapshot is
// not written, so a prior backup survives a setup from a clean slate.
// Returns whether a snapshot was written.
func (m *Manager) backupAll() (bool, error) {
	doc, err := m.Settings.Read()
	if err != nil {
		return false, err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return false, err
	}
	if !hasManaged(hooks) {
		return false, nil
	}
	return true, m.snapshot(hooks)
}

// snapshot writes the managed subset of hooks as the new backup.
func (m *Manager) snapshot(hooks map[string]json.RawMessage) error {
	snap := settings.Backup{}
	for _, ev := range Events() {
		if raw, ok := hooks[ev]; ok {
			snap[ev] = raw
		}
	}
	if len(snap) == 0 {
		return nil
	}
	return m.Backup.Write(snap)
}

func hasManaged(hooks map[string]json.RawMessage) bool {
	for _, ev := range Events() {
		if _, ok := hooks[ev]; ok {
			return true
		}
	}
	return false
}
