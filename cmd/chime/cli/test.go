package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/chimeio/chime/cmd/chime/cli/notify"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	var banner bool

	cmd := &cobra.Command{
		Use:   "test [sound]",
		Short: "Play a sound (and optionally a banner) without touching settings",
		Long: `Try out a sound before installing it.

  chime test              plays the platform default
  chime test Glass        plays a named system sound
  chime test ./ding.wav   plays a file
  chime test --banner     also raises the desktop notification`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return runTest(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), ref, banner)
		},
	}

	cmd.Flags().BoolVar(&banner, "banner", false, "Also show the desktop notification")

	return cmd
}

func runTest(ctx context.Context, w, errW io.Writer, ref string, banner bool) error {
	platform, err := notify.Detect()
	if err != nil {
		return err
	}

	soundPath, err := notify.ResolveSound(platform, ref, nil)
	if err != nil {
		printSoundError(errW, err)
		return NewSilentError(err)
	}

	runner := notify.Runner{Platform: platform}
	fmt.Fprintf(w, "Playing %s...\n", soundPath)
	if err := runner.Play(ctx, soundPath); err != nil {
		return fmt.Errorf("playing sound: %w", err)
	}

	if banner {
		if err := runner.Notify(ctx); err != nil {
			return fmt.Errorf("showing notification: %w", err)
		}
	}
	return nil
}
