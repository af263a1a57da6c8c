// internal/console/styles.go
//
// Lipgloss styles for the console front end.
// Styles are built from the session's renderer so colour and emphasis
// follow the output writer's profile.

package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	progress lipgloss.Style
	prompt   lipgloss.Style
	hit      lipgloss.Style
	miss     lipgloss.Style
	warn     lipgloss.Style
	secret   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		progress: r.NewStyle().Bold(true),
		prompt:   r.NewStyle().Foreground(lipgloss.Color("252")),
		hit:      r.NewStyle().Foreground(lipgloss.Color("42")),
		miss:     r.NewStyle().Foreground(lipgloss.Color("196")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
		secret: r.NewStyle().
			Bold(true).
			Underline(true),
	}
}
