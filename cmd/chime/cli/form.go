package cli

import (
	"os"

	"github.com/charmbracelet/huh"
)

// NewAccessibleForm builds a huh form that honors the ACCESSIBLE env var,
// switching to plain sequential prompts for screen readers.
func NewAccessibleForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithAccessible(os.Getenv("ACCESSIBLE") != "")
}

// canPromptInteractively checks if we can show interactive prompts.
// Returns false when running in CI, tests, or other non-interactive
// environments.
func canPromptInteractively() bool {
	// Check for test environment
	if os.Getenv("CHIME_TEST_TTY") != "" {
		return os.Getenv("CHIME_TEST_TTY") == "1"
	}

	// Check if /dev/tty is available
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = tty.Close()
	return true
}
