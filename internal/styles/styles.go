package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro accents, shared with the tree and repl output
const (
	Red     = "#FF6188" // Errors
	Yellow  = "#FFD866" // Attribute values
	Green   = "#A9DC76" // Tag names
	Cyan    = "#78DCE8" // Attribute names
	Comment = "#727072" // Dim text, help
)

var (
	TagStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Green))
	AttrNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	AttrValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
)
