package hooks

import "github.com/chimeio/chime/cmd/chime/cli/notify"

// HookEntry is a single command Claude Code runs when an event fires.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// HookGroup is the singleton group chime writes per managed event. Claude
// Code accepts several groups per event; chime only ever reads or writes
// index 0 of the events it owns.
type HookGroup struct {
	Hooks []HookEntry `json:"hooks"`
}

// BuildEntries produces the ordered hook entries for one event: the sound
// command first, then the desktop banner when enabled. soundPath must
// already be resolved to an absolute path (see notify.ResolveSound).
func BuildEntries(p notify.Platform, soundPath string, desktopNotify bool) []HookEntry {
	entries := []HookEntry{
		{Type: "command", Command: p.PlayCommand(soundPath)},
	}
	if desktopNotify {
		entries = append(entries, HookEntry{Type: "command", Command: p.NotifyCommand()})
	}
	return entries
}
