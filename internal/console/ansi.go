// Package console runs the interactive read-eval loop of the adventure on a
// terminal, with optional ANSI colour and word wrapping.
package console

import "fmt"

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Green        = "\033[32m"
	Yellow       = "\033[33m"
	Cyan         = "\033[36m"
	BrightYellow = "\033[93m"
)

// Palette assigns colours to the parts of the console output. A disabled
// palette returns text unchanged.
type Palette struct {
	Enabled bool
	Prompt  string
	Banner  string
	Intro   string
}

// NewPalette returns the default palette, enabled or not.
func NewPalette(enabled bool) Palette {
	return Palette{
		Enabled: enabled,
		Prompt:  Bold + Green,
		Banner:  Bold + BrightYellow,
		Intro:   Cyan,
	}
}

// Paint colours text with color when the palette is enabled.
func (p Palette) Paint(color, text string) string {
	if !p.Enabled || color == "" {
		return text
	}
	return Colorize(color, text)
}

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
func Colorf(color, format string, args ...any) string {
	return color + fmt.Sprintf(format, args...) + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			// Skip past the 'm' terminator
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
