// Package jsonutil holds small JSON encoding helpers shared across the CLI.
package jsonutil

import "encoding/json"

// MarshalIndentWithNewline pretty-prints v and appends the trailing newline
// expected of configuration files that users open in editors.
func MarshalIndentWithNewline(v any, prefix, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
