// Package settings provides read-modify-write access to the shared Claude
// Code settings document and to chime's hook backup snapshot. The settings
// file is owned by Claude Code: chime only rewrites the hook entries it
// manages and carries every other key through untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chimeio/chime/cmd/chime/cli/jsonutil"
)

// HooksKey is the top-level settings key holding per-event hook configuration.
const HooksKey = "hooks"

// Document is the raw settings object. Values stay json.RawMessage so keys
// chime does not manage round-trip without being re-encoded.
type Document map[string]json.RawMessage

// ParseError reports a settings file that exists but is not valid JSON.
// A broken settings document is fatal: guessing at its contents risks
// clobbering configuration Claude Code still understands.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads and writes the shared settings document at a fixed path.
// It holds no cache: every operation re-reads the file so edits made by
// Claude Code or another chime invocation between calls are picked up.
type Store struct {
	Path string
}

// Read loads the settings document. A missing file is an empty document,
// not an error.
func (s *Store) Read() (Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}
	if doc == nil {
		// The file contained JSON null.
		doc = Document{}
	}
	return doc, nil
}

// Write persists the document pretty-printed, creating the containing
// directory if needed. This is the single mutation point of every operation
// that touches the settings file.
func (s *Store) Write(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o750); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := jsonutil.MarshalIndentWithNewline(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	//nolint:gosec // G306: settings file is config, not secrets; 0o644 is appropriate
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Hooks decodes the hooks mapping. Event values keep their raw encoding so
// entries chime does not manage survive a round trip unchanged.
func (d Document) Hooks() (map[string]json.RawMessage, error) {
	raw, ok := d[HooksKey]
	if !ok {
		return map[string]json.RawMessage{}, nil
	}
	var hooks map[string]json.RawMessage
	if err := json.Unmarshal(raw, &hooks); err != nil {
		return nil, fmt.Errorf("parsing hooks in settings: %w", err)
	}
	if hooks == nil {
		hooks = map[string]json.RawMessage{}
	}
	return hooks, nil
}

// SetHooks stores the hooks mapping back into the document. An empty mapping
// removes the key entirely: a bare {} is never serialized.
func (d Document) SetHooks(hooks map[string]json.RawMessage) error {
	if len(hooks) == 0 {
		delete(d, HooksKey)
		return nil
	}
	data, err := json.Marshal(hooks)
	if err != nil {
		return fmt.Errorf("marshaling hooks: %w", err)
	}
	d[HooksKey] = data
	return nil
}
