package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feedcard/feedcard/pkg/layout"
)

// Color palette shared by all terminal output.
var (
	colorCyan  = lipgloss.Color("36")  // primary actions
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorBlue  = lipgloss.Color("75")  // links
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleLink  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// renderTerminalCard draws the composed card as styled terminal text. It is
// a faithful preview of the SVG line structure: labels in the label column,
// values and their continuation lines in the value column.
func renderTerminalCard(l layout.Layout, labelWidth int) string {
	var b strings.Builder

	for i, rec := range l.Records {
		if i > 0 {
			b.WriteString("\n")
		}

		label := ""
		first := true
		for _, line := range rec.Lines {
			if line.Role == layout.RoleLabel {
				label = line.Text
				continue
			}
			if first {
				b.WriteString(styleLabel.Render(pad(label, labelWidth)))
				first = false
			} else {
				// Continuation lines hang under the value column.
				b.WriteString(pad("", labelWidth))
			}
			b.WriteString(styleValue.Render(line.Text))
			b.WriteString("\n")
		}
		if rec.Link != "" {
			b.WriteString(pad("", labelWidth) + styleLink.Render(rec.Link) + "\n")
		}
	}

	return styleCardBorder.Render(strings.TrimRight(b.String(), "\n "))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
