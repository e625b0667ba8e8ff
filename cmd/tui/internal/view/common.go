package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CommonModel carries the terminal dimensions shared by every view.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg returns control to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	noticeStyle = lipgloss.NewStyle().Padding(2)
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	viewStyle  = lipgloss.NewStyle().Padding(1)
)

// Notice renders a transient full-view message, such as a loading state.
func Notice(s string) string {
	return noticeStyle.Render(s)
}

// ErrorNotice renders an error in place of the view content.
func ErrorNotice(err error) string {
	return noticeStyle.Render(fmt.Sprintf("Error: %v", err))
}

// NewLedgerTable builds a focused table with the styling every listing view
// shares.
func NewLedgerTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}
