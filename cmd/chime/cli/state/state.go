// Package state persists chime's own per-user record: telemetry consent and
// the structured sound/notify choice behind each installed event. The record
// mirrors what the generated command strings encode, so status does not have
// to pattern-match them back apart. It is advisory only; the settings
// document remains the source of truth.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chimeio/chime/cmd/chime/cli/jsonutil"
)

// EventRecord is the structured intent behind one installed event.
type EventRecord struct {
	Sound  string `json:"sound"`
	Notify bool   `json:"notify"`
}

// State is the content of chime's own state file.
type State struct {
	// Telemetry controls anonymous usage analytics.
	// nil = not asked yet (show prompt), true = opted in, false = opted out.
	Telemetry *bool `json:"telemetry,omitempty"`

	// Events maps a managed event name to the choices made at setup time.
	Events map[string]EventRecord `json:"events,omitempty"`
}

// Store reads and writes the state file at a fixed path.
type Store struct {
	Path string
}

// Load returns defaults when the file is missing or unreadable. A broken
// state file never blocks an operation; status simply falls back to
// recovering intent from the command strings.
func (s *Store) Load() *State {
	st := &State{}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, st); err != nil {
		return &State{}
	}
	return st
}

// Save persists the state file, creating the containing directory if needed.
func (s *Store) Save(st *State) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o750); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := jsonutil.MarshalIndentWithNewline(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	//nolint:gosec // G306: state file is config, not secrets
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// SetEvent records the setup choices for an event.
func (st *State) SetEvent(event string, rec EventRecord) {
	if st.Events == nil {
		st.Events = make(map[string]EventRecord)
	}
	st.Events[event] = rec
}

// DeleteEvent drops the record for an event.
func (st *State) DeleteEvent(event string) {
	delete(st.Events, event)
}
