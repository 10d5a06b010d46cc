package cli

import (
	"fmt"
	"io"

	"github.com/chimeio/chime/cmd/chime/cli/hooks"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <event>",
		Short: "Permanently remove notification hooks for an event",
		Long: `Remove the notification hooks for an event and drop the backup.

Unlike disable, there is no way back: a later ` + "`chime enable`" + ` will find
nothing to restore. Use ` + "`chime setup`" + ` to configure the event again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := args[0]
			if !hooks.IsManaged(event) {
				printUnknownEventError(cmd.ErrOrStderr(), event)
				return NewSilentError(fmt.Errorf("unknown event %q", event))
			}
			return runRemove(cmd.OutOrStdout(), event, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runRemove(w io.Writer, event string, force bool) error {
	if !force && canPromptInteractively() {
		confirmed := false
		form := NewAccessibleForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove %s hooks and the backup?", event)).
					Description("This cannot be undone by `chime enable`.").
					Affirmative("Yes, remove").
					Negative("Cancel").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation cancelled: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(w, "Remove cancelled.")
			return nil
		}
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}
	res, err := mgr.Remove(event)
	if err != nil {
		return err
	}
	if res.NotFound {
		fmt.Fprintf(w, "No hooks installed for %s. Nothing to remove.\n", event)
		return nil
	}

	fmt.Fprintf(w, "✓ %s hooks removed\n", event)
	return nil
}
