//go:build !linux

package terminal

// resetTerminalMode is a no-op; escape sequences in EmergencyReset still restore the display
func resetTerminalMode() {}
