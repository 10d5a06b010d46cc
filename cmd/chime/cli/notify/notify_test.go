package notify

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlatformFor_KnownSystems(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows"} {
		p, err := PlatformFor(goos)
		if err != nil {
			t.Fatalf("PlatformFor(%q): %v", goos, err)
		}
		if p.SoundsDir == "" || p.SoundExt == "" || p.DefaultSound == "" {
			t.Errorf("PlatformFor(%q): incomplete platform %+v", goos, p)
		}
		if !strings.HasSuffix(p.DefaultSound, p.SoundExt) {
			t.Errorf("PlatformFor(%q): default sound %q does not carry extension %q", goos, p.DefaultSound, p.SoundExt)
		}
	}
}

func TestPlatformFor_Unsupported(t *testing.T) {
	_, err := PlatformFor("plan9")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

func TestPlayCommand_EmbedsPath(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "afplay"},
		{"linux", "paplay"},
		{"windows", "SoundPlayer"},
	}
	for _, tt := range tests {
		p, err := PlatformFor(tt.goos)
		if err != nil {
			t.Fatalf("PlatformFor(%q): %v", tt.goos, err)
		}
		cmd := p.PlayCommand("/tmp/ding" + p.SoundExt)
		if !strings.Contains(cmd, tt.want) {
			t.Errorf("%s: expected %q in command %q", tt.goos, tt.want, cmd)
		}
		if !strings.Contains(cmd, "/tmp/ding"+p.SoundExt) {
			t.Errorf("%s: expected sound path in command %q", tt.goos, cmd)
		}
	}
}

func TestNotifyCommand_CarriesMarker(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows"} {
		p, err := PlatformFor(goos)
		if err != nil {
			t.Fatalf("PlatformFor(%q): %v", goos, err)
		}
		cmd := p.NotifyCommand()
		found := false
		for _, marker := range NotifyMarkers {
			if strings.Contains(cmd, marker) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: notify command %q carries no known marker", goos, cmd)
		}
		if !strings.Contains(cmd, NotifyTitle) {
			t.Errorf("%s: notify command missing title", goos)
		}
	}
}

func TestResolveSound_EmptyIsDefault(t *testing.T) {
	p, _ := PlatformFor("darwin")
	probe := func(string) bool { return false }

	// The default is used verbatim, without an existence check.
	got, err := ResolveSound(p, "", probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p.DefaultSound {
		t.Errorf("expected default sound %q, got %q", p.DefaultSound, got)
	}
}

func TestResolveSound_BareNameGetsExtensionAndDir(t *testing.T) {
	p, _ := PlatformFor("darwin")
	want := filepath.Join(p.SoundsDir, "Ping.aiff")
	probe := func(path string) bool { return path == want }

	got, err := ResolveSound(p, "Ping", probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolveSound_NameWithExtensionNotDoubled(t *testing.T) {
	p, _ := PlatformFor("darwin")
	want := filepath.Join(p.SoundsDir, "Ping.aiff")
	probe := func(path string) bool { return path == want }

	got, err := ResolveSound(p, "Ping.aiff", probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolveSound_AbsolutePathChecked(t *testing.T) {
	p, _ := PlatformFor("linux")

	got, err := ResolveSound(p, "/opt/sounds/ding.oga", func(string) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/opt/sounds/ding.oga" {
		t.Errorf("expected absolute path back, got %q", got)
	}

	_, err = ResolveSound(p, "/opt/sounds/ding.oga", func(string) bool { return false })
	var notFound *SoundNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SoundNotFoundError, got %v", err)
	}
}

func TestResolveSound_RelativeFallsBackToWorkingDir(t *testing.T) {
	p, _ := PlatformFor("linux")
	abs, err := filepath.Abs("ding.oga")
	if err != nil {
		t.Fatal(err)
	}
	probe := func(path string) bool { return path == abs }

	got, err := ResolveSound(p, "ding.oga", probe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != abs {
		t.Errorf("expected %q, got %q", abs, got)
	}
}

func TestResolveSound_NotFoundListsCandidates(t *testing.T) {
	p, _ := PlatformFor("darwin")

	_, err := ResolveSound(p, "Nope", func(string) bool { return false })
	var notFound *SoundNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SoundNotFoundError, got %v", err)
	}
	if notFound.Ref != "Nope" {
		t.Errorf("expected ref Nope, got %q", notFound.Ref)
	}
	if len(notFound.Tried) < 2 {
		t.Errorf("expected at least two candidates, got %v", notFound.Tried)
	}
	if notFound.Tried[0] != filepath.Join(p.SoundsDir, "Nope.aiff") {
		t.Errorf("expected sounds dir candidate first, got %v", notFound.Tried)
	}
}
