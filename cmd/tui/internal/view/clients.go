package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmendezv/fiado/internal/credit"
)

type ClientsModel struct {
	CommonModel
	creditSvc *credit.Service

	table     table.Model
	summaries []credit.ClientSummary
	loading   bool
	err       error
}

func NewClientsModel(creditSvc *credit.Service) ClientsModel {
	columns := []table.Column{
		{Title: "Client", Width: 26},
		{Title: "ID Number", Width: 12},
		{Title: "Credits", Width: 8},
		{Title: "Active", Width: 7},
		{Title: "Total", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Balance", Width: 12},
	}

	return ClientsModel{
		creditSvc: creditSvc,
		table:     NewLedgerTable(columns),
	}
}

func (m ClientsModel) Title() string     { return "Clients" }
func (m ClientsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m ClientsModel) Init() tea.Cmd {
	return m.loadClientsCmd()
}

func (m ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClientsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summaries = msg.summaries
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadClientsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ClientsModel) View() string {
	if m.loading {
		return Notice("Loading clients...")
	}

	if m.err != nil {
		return ErrorNotice(m.err)
	}

	return viewStyle.Render(borderStyle.Render(m.table.View()))
}

func (m *ClientsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.summaries))
	for _, s := range m.summaries {
		rows = append(rows, table.Row{
			strings.TrimSpace(s.ClientName + " " + s.ClientLastName),
			s.IDNumber,
			fmt.Sprintf("%d", s.Credits),
			fmt.Sprintf("%d", s.ActiveCredits),
			FormatAmount(s.TotalCredit),
			FormatAmount(s.TotalPaid),
			FormatAmount(s.RemainingBalance()),
		})
	}
	m.table.SetRows(rows)
}

type loadClientsMsg struct {
	summaries []credit.ClientSummary
	err       error
}

func (m ClientsModel) loadClientsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		summaries, err := m.creditSvc.ClientSummaries(ctx)
		return loadClientsMsg{summaries: summaries, err: err}
	}
}
