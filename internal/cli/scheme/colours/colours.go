package colours

import (
	"strings"

	"github.com/fatih/color"
)

// Color scheme for the CLI
var (
	Title   = color.New(color.FgCyan, color.Bold)
	Voice   = color.New(color.FgMagenta)
	Prompt  = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Success = color.New(color.FgGreen)
	Info    = color.New(color.FgBlue)
	Warning = color.New(color.FgYellow)
	Path    = color.New(color.FgHiBlack)
)

// Rule is the separator printed under section headings
func Rule() string {
	return strings.Repeat("=", 60)
}
