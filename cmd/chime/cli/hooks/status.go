package hooks

import (
	"encoding/json"
	"fmt"
)

// StatusState summarizes the overall hook state.
type StatusState int

const (
	// StatusNotConfigured: no active hooks and no backup to restore.
	StatusNotConfigured StatusState = iota
	// StatusEnabled: at least one managed event has hooks installed.
	StatusEnabled
	// StatusDisabled: nothing active, but a backup exists.
	StatusDisabled
)

// EventStatus describes one active managed event.
type EventStatus struct {
	Event string
	// Sound is the resolved sound path recovered from the sidecar record or
	// the installed command string; empty when neither yields one.
	Sound string
	// Notify reports whether a desktop banner entry is installed.
	Notify bool
	// EntryCount is the number of hook entries across the event's groups.
	EntryCount int
}

// Status is the full report: the overall state, the active events in
// canonical order, and the events held in the backup snapshot.
type Status struct {
	State        StatusState
	Active       []EventStatus
	BackupEvents []string
}

// Status inspects the settings document and the backup and reports what
// chime manages right now. Per-event detail comes from the sidecar record
// when it still matches what is installed, otherwise it is recovered from
// the command strings themselves, so hand-edited or pre-existing entries
// still report something useful.
func (m *Manager) Status() (Status, error) {
	doc, err := m.Settings.Read()
	if err != nil {
		return Status{}, err
	}
	hooks, err := doc.Hooks()
	if err != nil {
		return Status{}, err
	}

	st := m.State.Load()

	var res Status
	for _, ev := range Events() {
		raw, ok := hooks[ev]
		if !ok {
			continue
		}
		var groups []HookGroup
		if err := json.Unmarshal(raw, &groups); err != nil {
			return Status{}, fmt.Errorf("parsing hooks for %s: %w", ev, err)
		}

		es := EventStatus{Event: ev}
		for _, g := range groups {
			es.EntryCount += len(g.Hooks)
		}
		if rec, ok := st.Events[ev]; ok && recordMatches(m.Platform, rec, groups) {
			es.Sound = rec.Sound
			es.Notify = rec.Notify
		} else {
			es.Sound = recoverSound(groups)
			es.Notify = recoverNotify(groups)
		}
		res.Active = append(res.Active, es)
	}

	backup := m.Backup.Read()
	for _, ev := range Events() {
		if _, ok := backup[ev]; ok {
			res.BackupEvents = append(res.BackupEvents, ev)
		}
	}

	switch {
	case len(res.Active) > 0:
		res.State = StatusEnabled
	case len(res.BackupEvents) > 0:
		res.State = StatusDisabled
	default:
		res.State = StatusNotConfigured
	}
	return res, nil
}
