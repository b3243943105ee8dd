package cli

import (
	"os"

	"golang.org/x/term"
)

const (
	Reset         = "\x1b[0m"
	RedColour     = "\x1b[31m"
	GreenColour   = "\x1b[32m"
	YellowColour  = "\x1b[33m"
	BlueColour    = "\x1b[34m"
	MagentaColour = "\x1b[35m"
	CyanColour    = "\x1b[36m"
	GrayColour    = "\x1b[37m"
	WhiteColour   = "\x1b[97m"
)

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColourEnabled reports whether stdout is a terminal and NO_COLOR is unset or empty.
func ColourEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return stdoutIsTerminal()
}

func Paint(colour, message string) string {
	if !ColourEnabled() {
		return message
	}

	return colour + message + Reset
}
