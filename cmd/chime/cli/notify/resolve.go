package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SoundNotFoundError reports a sound reference that resolved to no existing
// file. Tried lists the candidate paths that were probed, in order.
type SoundNotFoundError struct {
	Ref   string
	Tried []string
}

func (e *SoundNotFoundError) Error() string {
	return fmt.Sprintf("sound %q not found (tried %s)", e.Ref, strings.Join(e.Tried, ", "))
}

// ResolveSound turns a user-supplied sound reference into the absolute path
// a hook command will embed. probe is an injected existence check; nil means
// the real filesystem.
//
// Resolution order: empty reference is the platform default (used verbatim),
// an absolute path is used after an existence check, and a bare name is
// tried in the platform sounds directory (appending the platform extension
// when the name has none) and then relative to the working directory.
func ResolveSound(p Platform, ref string, probe func(string) bool) (string, error) {
	if probe == nil {
		probe = fileExists
	}

	if ref == "" {
		return p.DefaultSound, nil
	}

	if filepath.IsAbs(ref) {
		if probe(ref) {
			return ref, nil
		}
		return "", &SoundNotFoundError{Ref: ref, Tried: []string{ref}}
	}

	name := ref
	if !hasAudioExtension(name) {
		name += p.SoundExt
	}
	candidate := filepath.Join(p.SoundsDir, name)
	tried := []string{candidate}
	if probe(candidate) {
		return candidate, nil
	}

	if abs, err := filepath.Abs(ref); err == nil {
		tried = append(tried, abs)
		if probe(abs) {
			return abs, nil
		}
	}

	return "", &SoundNotFoundError{Ref: ref, Tried: tried}
}

func hasAudioExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range KnownAudioExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
