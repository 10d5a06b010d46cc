// Package notify is the platform capability chime injects into hook
// construction: where system sounds live, how to play one, and how to raise
// a desktop banner. The variants form a closed set selected once from the
// running operating system.
package notify

import (
	"errors"
	"fmt"
	"runtime"
)

// NotifyTitle and NotifyMessage are the fixed banner contents embedded in
// generated hook commands. The message never varies per event.
const (
	NotifyTitle   = "Claude Code"
	NotifyMessage = "Waiting for your input"
)

// KnownAudioExtensions are the file extensions recognized as sound assets,
// lowercase with leading dot. Used both when resolving bare sound names and
// when recovering a sound path from an installed command string.
var KnownAudioExtensions = []string{
	".aiff", ".aif", ".caf", ".wav", ".mp3", ".m4a", ".oga", ".ogg", ".flac",
}

// NotifyMarkers are substrings that identify a generated desktop-banner
// command on any supported platform.
var NotifyMarkers = []string{
	"display notification",
	"notify-send",
	"ShowBalloonTip",
}

// ErrUnsupportedPlatform is returned when no command templates exist for the
// running operating system.
var ErrUnsupportedPlatform = errors.New("no notification commands for this platform")

// Platform describes how one operating system plays sounds and raises
// desktop notifications. It is a plain value so tests can pin a platform
// regardless of the host.
type Platform struct {
	OS           string
	SoundsDir    string
	SoundExt     string
	DefaultSound string
}

// Detect selects the capability for the current operating system.
func Detect() (Platform, error) {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor returns the capability for a GOOS value.
func PlatformFor(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return Platform{
			OS:           "darwin",
			SoundsDir:    "/System/Library/Sounds",
			SoundExt:     ".aiff",
			DefaultSound: "/System/Library/Sounds/Glass.aiff",
		}, nil
	case "linux":
		return Platform{
			OS:           "linux",
			SoundsDir:    "/usr/share/sounds/freedesktop/stereo",
			SoundExt:     ".oga",
			DefaultSound: "/usr/share/sounds/freedesktop/stereo/complete.oga",
		}, nil
	case "windows":
		return Platform{
			OS:           "windows",
			SoundsDir:    `C:\Windows\Media`,
			SoundExt:     ".wav",
			DefaultSound: `C:\Windows\Media\chimes.wav`,
		}, nil
	default:
		return Platform{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// PlayCommand returns the fully-formed shell invocation that plays the sound
// at path. The string lands verbatim in the settings document, so it has to
// look like something a user could have written by hand.
func (p Platform) PlayCommand(path string) string {
	switch p.OS {
	case "darwin":
		return fmt.Sprintf("afplay %q", path)
	case "linux":
		return fmt.Sprintf("paplay %q 2>/dev/null || aplay %q 2>/dev/null", path, path)
	case "windows":
		return fmt.Sprintf(`powershell -NoProfile -Command "(New-Object Media.SoundPlayer '%s').PlaySync()"`, path)
	}
	return ""
}

// NotifyCommand returns the fully-formed shell invocation that raises the
// fixed desktop banner.
func (p Platform) NotifyCommand() string {
	switch p.OS {
	case "darwin":
		return fmt.Sprintf(`osascript -e 'display notification "%s" with title "%s"'`, NotifyMessage, NotifyTitle)
	case "linux":
		return fmt.Sprintf(`notify-send "%s" "%s"`, NotifyTitle, NotifyMessage)
	case "windows":
		return fmt.Sprintf(
			`powershell -NoProfile -Command "[reflection.assembly]::LoadWithPartialName('System.Windows.Forms') | Out-Null; $n = New-Object System.Windows.Forms.NotifyIcon; $n.Icon = [System.Drawing.SystemIcons]::Information; $n.Visible = $true; $n.ShowBalloonTip(4000, '%s', '%s', 'Info')"`,
			NotifyTitle, NotifyMessage)
	}
	return ""
}
