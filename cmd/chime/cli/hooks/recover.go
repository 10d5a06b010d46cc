package hooks

import (
	"slices"
	"strings"

	"github.com/chimeio/chime/cmd/chime/cli/notify"
	"github.com/chimeio/chime/cmd/chime/cli/state"
)

// recordMatches reports whether the sidecar record still describes what is
// installed: regenerating the entries from the record must reproduce the
// installed groups exactly. Anything else (hand edits, a different chime
// version's command shapes) falls back to string recovery.
func recordMatches(p notify.Platform, rec state.EventRecord, groups []HookGroup) bool {
	if len(groups) != 1 {
		return false
	}
	return slices.Equal(groups[0].Hooks, BuildEntries(p, rec.Sound, rec.Notify))
}

// recoverSound pulls a sound file path back out of the installed command
// strings. First match wins.
func recoverSound(groups []HookGroup) string {
	for _, g := range groups {
		for _, e := range g.Hooks {
			if path := soundPathIn(e.Command); path != "" {
				return path
			}
		}
	}
	return ""
}

// soundPathIn scans a shell command for a token ending in a known audio
// extension. The token starts after the last quote, space, or paren before
// the extension, which handles afplay "x.aiff", paplay 'x.oga', and the
// PowerShell SoundPlayer('x.wav') shapes alike.
func soundPathIn(command string) string {
	for _, ext := range notify.KnownAudioExtensions {
		idx := 0
		for {
			i := strings.Index(command[idx:], ext)
			if i < 0 {
				break
			}
			end := idx + i + len(ext)
			// The extension must end the token, not sit inside a longer word
			// (".aif" inside ".aiff").
			if end < len(command) && !isBoundary(command[end]) {
				idx = end
				continue
			}
			path := command[tokenStart(command[:end]):end]
			if path != "" && path != ext {
				return path
			}
			idx = end
		}
	}
	return ""
}

// tokenStart finds where the path token ending the prefix begins. A quote
// wins over whitespace so quoted paths may contain spaces; unquoted paths
// start after the last space or open paren.
func tokenStart(prefix string) int {
	quote := -1
	for _, sep := range []byte{'"', '\''} {
		if j := strings.LastIndexByte(prefix, sep); j > quote {
			quote = j
		}
	}
	if quote >= 0 {
		return quote + 1
	}
	s := 0
	for _, sep := range []byte{' ', '('} {
		if j := strings.LastIndexByte(prefix, sep); j+1 > s {
			s = j + 1
		}
	}
	return s
}

func isBoundary(c byte) bool {
	switch c {
	case '"', '\'', ' ', ')', ';', '&', '|':
		return true
	}
	return false
}

// recoverNotify reports whether any installed command looks like a desktop
// banner invocation on any platform.
func recoverNotify(groups []HookGroup) bool {
	for _, g := range groups {
		for _, e := range g.Hooks {
			for _, marker := range notify.NotifyMarkers {
				if strings.Contains(e.Command, marker) {
					return true
				}
			}
		}
	}
	return false
}
