package ui

import (
	"fmt"

	"github.com/leadflowhq/leadflow/internal/model"
)

// ANSI256 color codes.
const (
	colorGreen  = 114
	colorRed    = 167
	colorBlue   = 74
	colorYellow = 179
	colorMuted  = 245
)

var noColor bool

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

func colored(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderSuccess returns s in green.
func RenderSuccess(s string) string { return colored(colorGreen, s) }

// RenderError returns s in red.
func RenderError(s string) string { return colored(colorRed, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return colored(colorMuted, s) }

// RenderStatus returns a lead status colored by pipeline stage.
func RenderStatus(s model.LeadStatus) string {
	switch s {
	case model.StatusNew:
		return colored(colorBlue, s.String())
	case model.StatusContacted:
		return colored(colorYellow, s.String())
	case model.StatusQualified, model.StatusWon:
		return colored(colorGreen, s.String())
	case model.StatusLost:
		return colored(colorRed, s.String())
	}
	return s.String()
}
