// Package cli implements the chime command line interface: setting up,
// toggling, and inspecting sound and desktop notifications for Claude Code
// hook events.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/chimeio/chime/cmd/chime/cli/hooks"
	"github.com/chimeio/chime/cmd/chime/cli/notify"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// Execute runs the root command and exits non-zero on error. Errors already
// reported to the user arrive wrapped in SilentError and are not printed
// again.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var silent *SilentError
		if !errors.As(err, &silent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chime",
		Short:   "Sound and desktop notifications for Claude Code",
		Long:    "chime wires sound and desktop notifications into Claude Code hook events.\nIt edits only the hook entries it owns; the rest of settings.json is left alone.",
		Version: version,
		// Errors are printed by Execute; usage on bad flags only.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newEnableCmd())
	cmd.AddCommand(newDisableCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newTestCmd())

	return cmd
}

// newManager builds the hook manager for the current platform. Unsupported
// platforms fail here, before any command logic runs.
func newManager() (*hooks.Manager, error) {
	p, err := notify.Detect()
	if err != nil {
		return nil, err
	}
	return hooks.NewManager(p)
}
