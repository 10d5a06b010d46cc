// Package hooks implements chime's settings-mutation protocol: installing,
// disabling, restoring, and removing the notification hooks chime owns
// inside the shared Claude Code settings document. Everything else in the
// document, including hook entries for events chime does not manage, passes
// through untouched.
package hooks

import "slices"

// Managed event names, as Claude Code spells them in settings.json.
const (
	EventSessionStart     = "SessionStart"
	EventUserPromptSubmit = "UserPromptSubmit"
	EventPreToolUse       = "PreToolUse"
	EventPostToolUse      = "PostToolUse"
	EventNotification     = "Notification"
	EventStop             = "Stop"
	EventSubagentStop     = "SubagentStop"
	EventPreCompact       = "PreCompact"
	EventSessionEnd       = "SessionEnd"
)

// Events lists every managed event, roughly in the order Claude Code fires
// them during a session. chime only creates or removes hook entries for
// these names.
func Events() []string {
	return []string{
		EventSessionStart,
		EventUserPromptSubmit,
		EventPreToolUse,
		EventPostToolUse,
		EventNotification,
		EventStop,
		EventSubagentStop,
		EventPreCompact,
		EventSessionEnd,
	}
}

// IsManaged reports whether name is one of the managed events.
func IsManaged(name string) bool {
	return slices.Contains(Events(), name)
}
