package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ToolStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	ResourceStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ToolText styles a tool name
func ToolText(text string) string {
	return ToolStyle.Render(text)
}

// ResourceText styles a resource URI template
func ResourceText(text string) string {
	return ResourceStyle.Render(text)
}

// PromptText styles a prompt name
func PromptText(text string) string {
	return PromptStyle.Render(text)
}

// ValidText styles a success status (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles an error message (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// KeyValue renders "key: value" with the key highlighted
func KeyValue(key string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, KeyStyle.Render(key+":"), " ", formatValue(value))
}
