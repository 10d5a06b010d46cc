package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner invokes the platform's playback and banner commands as child
// processes. Invocations are awaited to completion and carry no timeout of
// their own; callers wanting one wrap the context.
type Runner struct {
	Platform Platform
}

// Play plays the sound at path, blocking until the player exits.
func (r Runner) Play(ctx context.Context, path string) error {
	return r.shell(ctx, r.Platform.PlayCommand(path))
}

// Notify raises the fixed desktop banner.
func (r Runner) Notify(ctx context.Context) error {
	return r.shell(ctx, r.Platform.NotifyCommand())
}

func (r Runner) shell(ctx context.Context, command string) error {
	var cmd *exec.Cmd
	if r.Platform.OS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("running %q: %w: %s", command, err, msg)
		}
		return fmt.Errorf("running %q: %w", command, err)
	}
	return nil
}
