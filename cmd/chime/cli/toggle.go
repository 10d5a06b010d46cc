package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chimeio/chime/cmd/chime/cli/hooks"

	"github.com/spf13/cobra"
)

func newEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable [event]",
		Short: "Restore previously disabled notification hooks",
		Long: `Restore notification hooks from the last backup.

Without an event, every backed-up event is restored. With an event, only
that one. The backup is kept, so enable can be run again.`,
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
			return runEnable(cmd.OutOrStdout(), event)
		},
	}
	return cmd
}

func runEnable(w io.Writer, event string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	res, err := mgr.Enable(event)
	if err != nil {
		return err
	}

	switch {
	case res.NoBackup:
		fmt.Fprintln(w, "Nothing to enable: no backup found. Run `chime setup` first.")
	case res.NotFound:
		fmt.Fprintf(w, "No backup for %s. Run `chime setup %s` to configure it.\n", event, event)
	default:
		fmt.Fprintf(w, "✓ Notifications enabled (%s)\n", strings.Join(res.Restored, ", "))
	}
	return nil
}

func newDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable [event]",
		Short: "Disable notification hooks, keeping a backup",
		Long: `Remove notification hooks from the settings document after backing them up.

Without an event, all managed events are disabled. With an event, only that
one; the backup still snapshots everything that was active, so a later
` + "`chime enable`" + ` restores the full state.`,
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
			return runDisable(cmd.OutOrStdout(), event)
		},
	}
	return cmd
}

func runDisable(w io.Writer, event string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	res, err := mgr.Disable(event)
	if err != nil {
		return err
	}

	switch {
	case res.NothingConfigured:
		fmt.Fprintln(w, "No notification hooks configured. Nothing to disable.")
	case res.NotFound:
		fmt.Fprintf(w, "No hooks installed for %s. Nothing to disable.\n", event)
	default:
		fmt.Fprintf(w, "✓ Notifications disabled (%s)\n", strings.Join(res.Disabled, ", "))
		fmt.Fprintln(w, "  Run `chime enable` to restore them.")
	}
	return nil
}
