package udiff

import "github.com/charmbracelet/lipgloss"

// Styles maps each class of rendered patch token to a lipgloss style.
// Token classes follow the structure of the output: file headers, hunk
// headers, function context, and the three body line kinds.
type Styles struct {
	PatchHeader lipgloss.Style
	HunkHeader  lipgloss.Style
	FuncCtx     lipgloss.Style
	Context     lipgloss.Style
	Delete      lipgloss.Style
	Insert      lipgloss.Style
}

// DefaultStyles returns the conventional palette: red deletions, green
// insertions, cyan hunk headers, bold file headers.
func DefaultStyles() Styles {
	return Styles{
		PatchHeader: lipgloss.NewStyle().Bold(true),
		HunkHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		FuncCtx:     lipgloss.NewStyle(),
		Context:     lipgloss.NewStyle(),
		Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Insert:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// render styles s when coloring is on. Empty spans pass through untouched
// so no escape sequences are emitted around nothing.
func render(color bool, style lipgloss.Style, s string) string {
	if !color || s == "" {
		return s
	}
	return style.Render(s)
}
