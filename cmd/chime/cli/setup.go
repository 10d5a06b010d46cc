package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chimeio/chime/cmd/chime/cli/hooks"
	"github.com/chimeio/chime/cmd/chime/cli/notify"
	"github.com/chimeio/chime/cmd/chime/cli/state"
	"github.com/chimeio/chime/cmd/chime/cli/telemetry"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSetupCmd() *cobra.Command {
	var soundFlag string
	var notifyFlag bool
	var testFlag bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "setup [event]",
		Short: "Install notification hooks for a Claude Code event",
		Long: `Install a sound (and optionally a desktop banner) for a Claude Code hook event.

Without arguments an interactive flow walks through the choices. With flags
or without a TTY, defaults apply: the Stop event and the platform's stock
sound.

  chime setup
  chime setup Stop --sound Glass
  chime setup Notification --sound /path/to/ding.wav --notify=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := ""
			if len(args) > 0 {
				event = args[0]
			}
			if event != "" && !hooks.IsManaged(event) {
				printUnknownEventError(cmd.ErrOrStderr(), event)
				return NewSilentError(fmt.Errorf("unknown event %q", event))
			}

			interactive := canPromptInteractively() && !yes &&
				!cmd.Flags().Changed("sound") && event == ""

			if interactive {
				return runSetupInteractive(cmd.OutOrStdout(), notifyFlag, testFlag)
			}
			if event == "" {
				event = hooks.EventStop
			}
			return runSetup(cmd.OutOrStdout(), cmd.ErrOrStderr(), event, soundFlag, notifyFlag, testFlag)
		},
	}

	cmd.Flags().StringVar(&soundFlag, "sound", "", "Sound to play: a name from the system sounds directory or a file path")
	cmd.Flags().BoolVar(&notifyFlag, "notify", true, "Also show a desktop notification banner")
	cmd.Flags().BoolVarP(&testFlag, "test", "t", false, "Play the sound once after installing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip prompts and accept defaults")

	// Provide a helpful error when --sound is used without a value
	defaultFlagErr := cmd.FlagErrorFunc()
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		var valErr *pflag.ValueRequiredError
		if errors.As(err, &valErr) && valErr.GetSpecifiedName() == "sound" {
			fmt.Fprintln(c.ErrOrStderr(), "Missing sound. Pass a name from the system sounds directory or a file path.")
			return NewSilentError(errors.New("missing sound value"))
		}
		return defaultFlagErr(c, err)
	})

	return cmd
}

// runSetup installs hooks non-interactively.
func runSetup(w, errW io.Writer, event, soundRef string, desktopNotify, playTest bool) error {
	platform, err := notify.Detect()
	if err != nil {
		return err
	}

	soundPath, err := notify.ResolveSound(platform, soundRef, nil)
	if err != nil {
		printSoundError(errW, err)
		return NewSilentError(err)
	}

	mgr, err := hooks.NewManager(platform)
	if err != nil {
		return err
	}
	if err := mgr.Setup(event, soundPath, desktopNotify); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ %s hook installed (%s)\n", event, soundPath)
	if desktopNotify {
		fmt.Fprintln(w, "✓ Desktop notification enabled")
	}

	st := mgr.State.Load()
	if err := promptTelemetryConsent(st); err == nil {
		_ = mgr.State.Save(st)
	}
	captureEvent(st, "setup", map[string]any{"event": event, "notify": desktopNotify})

	if playTest {
		runner := notify.Runner{Platform: platform}
		if err := runner.Play(context.Background(), soundPath); err != nil {
			fmt.Fprintf(errW, "Warning: could not play sound: %v\n", err)
		}
	}
	return nil
}

// runSetupInteractive walks the user through event, sound, and banner
// choices, then installs.
func runSetupInteractive(w io.Writer, defaultNotify, playTest bool) error {
	platform, err := notify.Detect()
	if err != nil {
		return err
	}

	event := hooks.EventStop
	eventOptions := make([]huh.Option[string], 0, len(hooks.Events()))
	for _, ev := range hooks.Events() {
		label := ev
		if ev == hooks.EventStop {
			label += " (when Claude finishes)"
		}
		eventOptions = append(eventOptions, huh.NewOption(label, ev))
	}

	soundRef := ""
	desktopNotify := defaultNotify

	form := NewAccessibleForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which event should chime on?").
				Options(eventOptions...).
				Value(&event),
			huh.NewInput().
				Title("Sound").
				Description(fmt.Sprintf("A name from %s, a file path, or empty for the default.", platform.SoundsDir)).
				Value(&soundRef),
			huh.NewConfirm().
				Title("Show a desktop notification too?").
				Affirmative("Yes").
				Negative("No").
				Value(&desktopNotify),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	soundPath, err := notify.ResolveSound(platform, soundRef, nil)
	if err != nil {
		printSoundError(w, err)
		return NewSilentError(err)
	}

	mgr, err := hooks.NewManager(platform)
	if err != nil {
		return err
	}
	if err := mgr.Setup(event, soundPath, desktopNotify); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ %s hook installed (%s)\n", event, soundPath)
	if desktopNotify {
		fmt.Fprintln(w, "✓ Desktop notification enabled")
	}

	if !playTest {
		playNow := true
		confirm := NewAccessibleForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Play the sound now?").
					Affirmative("Yes").
					Negative("No").
					Value(&playNow),
			),
		)
		if err := confirm.Run(); err == nil {
			playTest = playNow
		}
	}
	if playTest {
		runner := notify.Runner{Platform: platform}
		if err := runner.Play(context.Background(), soundPath); err != nil {
			fmt.Fprintf(w, "Warning: could not play sound: %v\n", err)
		}
	}

	fmt.Fprintln(w)
	st := mgr.State.Load()
	if err := promptTelemetryConsent(st); err != nil {
		return fmt.Errorf("telemetry consent: %w", err)
	}
	if err := mgr.State.Save(st); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	captureEvent(st, "setup", map[string]any{"event": event, "notify": desktopNotify})

	fmt.Fprintln(w, "\nReady.")
	return nil
}

// printSoundError writes a friendly message for sound resolution failures.
func printSoundError(w io.Writer, err error) {
	var notFound *notify.SoundNotFoundError
	if !errors.As(err, &notFound) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Sound %q not found. Tried:\n", notFound.Ref)
	for _, p := range notFound.Tried {
		fmt.Fprintf(w, "  %s\n", p)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use a name from the system sounds directory or a path to an audio file.")
}

// printUnknownEventError lists the managed events when an unknown one is
// requested.
func printUnknownEventError(w io.Writer, name string) {
	fmt.Fprintf(w, "Unknown event %q. Available events:\n", name)
	fmt.Fprintln(w)
	for _, ev := range hooks.Events() {
		suffix := ""
		if ev == hooks.EventStop {
			suffix = "    (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", ev, suffix)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: chime setup [event]")
}

// promptTelemetryConsent asks about telemetry once. It modifies st; the
// caller is responsible for saving.
func promptTelemetryConsent(st *state.State) error {
	// Skip if already asked
	if st.Telemetry != nil {
		return nil
	}

	// Env opt-out is recorded as a "no" so we never ask again
	if os.Getenv(telemetry.EnvOptOut) != "" {
		f := false
		st.Telemetry = &f
		return nil
	}

	if !canPromptInteractively() {
		return nil
	}

	consent := true
	form := NewAccessibleForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Help improve chime?").
				Description("Share anonymous usage data. No sounds, paths, or personal info collected.").
				Affirmative("Yes").
				Negative("No").
				Value(&consent),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("telemetry prompt: %w", err)
	}

	st.Telemetry = &consent
	return nil
}

// captureEvent sends one telemetry event and flushes. Inert without consent.
func captureEvent(st *state.State, event string, props map[string]any) {
	client := telemetry.New(st.Telemetry)
	client.Capture(event, props)
	client.Close()
}
