//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI switches the console output mode to virtual terminal
// processing so the styled error channel renders instead of printing raw
// escape bytes. Returns an error when stdout is not a console.
func EnableANSI() error {
	handle := windows.Handle(os.Stdout.Fd())
	if handle == windows.InvalidHandle {
		return fmt.Errorf("invalid stdout handle")
	}

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return fmt.Errorf("failed to get console mode: %w", err)
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(handle, mode); err != nil {
		return fmt.Errorf("failed to set console mode: %w", err)
	}
	return nil
}
