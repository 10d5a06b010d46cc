package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chimeio/chime/cmd/chime/cli/hooks"
	"github.com/chimeio/chime/cmd/chime/cli/paths"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which events have notification hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.OutOrStdout())
		},
	}
}

func runStatus(w io.Writer) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	status, err := mgr.Status()
	if err != nil {
		return err
	}

	styles := newStatusStyles(w)

	settingsPath, err := paths.SettingsFile()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.render(styles.bold, "chime status"))
	fmt.Fprintf(w, "%s %s\n\n", styles.render(styles.dim, "settings:"), settingsPath)

	switch status.State {
	case hooks.StatusNotConfigured:
		fmt.Fprintln(w, styles.render(styles.gray, "Not configured."))
		fmt.Fprintln(w, "Run `chime setup` to get started.")
		return nil
	case hooks.StatusDisabled:
		fmt.Fprintln(w, styles.render(styles.red, "Disabled."))
		fmt.Fprintf(w, "Backed up events: %s\n", strings.Join(status.BackupEvents, ", "))
		fmt.Fprintln(w, "Run `chime enable` to restore them.")
		return nil
	case hooks.StatusEnabled:
		fmt.Fprintln(w, styles.render(styles.green, "Enabled."))
	}

	for _, ev := range status.Active {
		line := fmt.Sprintf("  %s %s", styles.render(styles.green, "✓"), styles.render(styles.cyan, ev.Event))
		details := make([]string, 0, 2)
		if ev.Sound != "" {
			details = append(details, fmt.Sprintf("sound: %s", ev.Sound))
		}
		if ev.Notify {
			details = append(details, "desktop banner")
		}
		if len(details) > 0 {
			line += styles.render(styles.dim, fmt.Sprintf("  (%s)", strings.Join(details, ", ")))
		}
		fmt.Fprintln(w, line)
	}

	if len(status.BackupEvents) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", styles.render(styles.dim, "backup:"), strings.Join(status.BackupEvents, ", "))
	}
	return nil
}
