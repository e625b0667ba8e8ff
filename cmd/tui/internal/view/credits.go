package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmendezv/fiado/internal/credit"
)

type creditsState int

const (
	creditsStateBrowse creditsState = iota
	creditsStatePay
	creditsStateConfirmDelete
)

type CreditsModel struct {
	CommonModel
	creditSvc *credit.Service

	state creditsState
	table table.Model
	list  []*credit.Credit
	form  *huh.Form

	statusFilterIdx int

	filter  credit.ListFilter
	loading bool
	err     error
	status  string

	// Payment form bindings
	formAmount string
	formMethod string
	formNotes  string

	// Delete confirmation binding
	confirmDelete bool
}

func NewCreditsModel(creditSvc *credit.Service) CreditsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Client", Width: 26},
		{Title: "ID Number", Width: 12},
		{Title: "Total", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Status", Width: 9},
	}

	return CreditsModel{
		creditSvc: creditSvc,
		table:     NewLedgerTable(columns),
		filter:    credit.ListFilter{},
	}
}

func (m CreditsModel) Title() string { return "Credits" }
func (m CreditsModel) ShortHelp() string {
	switch m.state {
	case creditsStatePay:
		return "Navigate form | Esc: cancel"
	case creditsStateConfirmDelete:
		return "Confirm | Esc: cancel"
	}

	return "Esc: back | p: record payment | x: delete | s: status filter | r: refresh"
}

func (m CreditsModel) Init() tea.Cmd {
	return m.loadCreditsCmd()
}

func (m CreditsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCreditsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.list = msg.credits
		m.refreshTable()
		return m, nil

	case creditMutatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}
		m.state = creditsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCreditsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case creditsStateBrowse:
		return m.updateBrowse(msg)
	case creditsStatePay, creditsStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m CreditsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCreditsCmd()
		case "p":
			return m.enterPayMode()
		case "x":
			return m.enterDeleteMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadCreditsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CreditsModel) selected() *credit.Credit {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.list) {
		return nil
	}

	return m.list[idx]
}

func (m CreditsModel) enterPayMode() (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil {
		return m, nil
	}

	if c.RemainingBalance() <= 0 {
		m.status = "Credit is already paid"
		return m, nil
	}

	m.formAmount = ""
	m.formMethod = string(credit.MethodCash)
	m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount (balance %s)", FormatAmount(c.RemainingBalance()))).
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := ParseAmount(s)
					if err != nil {
						return fmt.Errorf("invalid amount")
					}
					if cents <= 0 {
						return fmt.Errorf("amount must be greater than zero")
					}
					if cents > c.RemainingBalance() {
						return fmt.Errorf("amount exceeds remaining balance")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("method").
				Title("Payment method").
				Options(
					huh.NewOption("Cash", string(credit.MethodCash)),
					huh.NewOption("Transfer", string(credit.MethodTransfer)),
					huh.NewOption("Card", string(credit.MethodCard)),
					huh.NewOption("Check", string(credit.MethodCheck)),
					huh.NewOption("Other", string(credit.MethodOther)),
				).
				Value(&m.formMethod),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = creditsStatePay
	m.table.Blur()
	return m, m.form.Init()
}

func (m CreditsModel) enterDeleteMode() (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil {
		return m, nil
	}

	m.confirmDelete = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete credit for %s %s and all its payments?", c.ClientName, c.ClientLastName)).
				Value(&m.confirmDelete),
		),
	).WithWidth(48).WithShowHelp(false)

	m.state = creditsStateConfirmDelete
	m.table.Blur()
	return m, m.form.Init()
}

func (m CreditsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = creditsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == creditsStateConfirmDelete {
		if !m.confirmDelete {
			m.state = creditsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}

		return m, m.deleteCmd()
	}

	return m, m.payCmd()
}

func (m CreditsModel) View() string {
	if m.loading {
		return Notice("Loading credits...")
	}

	if m.err != nil {
		return ErrorNotice(m.err)
	}

	statusLabels := []string{"All", "Active", "Paid", "Overdue"}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := borderStyle.Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != creditsStateBrowse && m.form != nil {
		title := "Record Payment"
		if m.state == creditsStateConfirmDelete {
			title = "Delete Credit"
		}

		detail := ""
		if c := m.selected(); c != nil {
			detail = fmt.Sprintf("%s %s | ID %s", c.ClientName, c.ClientLastName, c.IDNumber)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(52).
			Render(fmt.Sprintf("%s\n\n%s\n\n%s", title, detail, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return viewStyle.Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *CreditsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		status := credit.StatusActive
		m.filter.Status = &status
	case 2:
		status := credit.StatusPaid
		m.filter.Status = &status
	case 3:
		status := credit.StatusOverdue
		m.filter.Status = &status
	default:
		m.filter.Status = nil
	}
}

func (m *CreditsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.list))
	for _, c := range m.list {
		rows = append(rows, table.Row{
			FormatDate(c.Date),
			strings.TrimSpace(c.ClientName + " " + c.ClientLastName),
			c.IDNumber,
			FormatAmount(c.TotalAmount),
			FormatAmount(c.RemainingBalance()),
			string(c.Status),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadCreditsMsg struct {
	credits []*credit.Credit
	err     error
}

func (m CreditsModel) loadCreditsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		credits, err := m.creditSvc.List(ctx, m.filter)
		return loadCreditsMsg{credits: credits, err: err}
	}
}

type creditMutatedMsg struct {
	note string
	err  error
}

func (m CreditsModel) payCmd() tea.Cmd {
	c := m.selected()
	if c == nil {
		return nil
	}

	amount, err := ParseAmount(m.formAmount)
	if err != nil {
		return func() tea.Msg { return creditMutatedMsg{err: err} }
	}

	params := credit.PaymentParams{
		Amount: amount,
		Method: credit.PaymentMethod(m.formMethod),
		Notes:  m.formNotes,
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		updated, err := m.creditSvc.RecordPayment(ctx, c.ID, params)
		if err != nil {
			return creditMutatedMsg{err: err}
		}

		note := "Payment recorded"
		if updated.Status == credit.StatusPaid {
			note = "Payment recorded, credit fully paid"
		}

		return creditMutatedMsg{note: note}
	}
}

func (m CreditsModel) deleteCmd() tea.Cmd {
	c := m.selected()
	if c == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if err := m.creditSvc.Delete(ctx, c.ID); err != nil {
			return creditMutatedMsg{err: err}
		}

		return creditMutatedMsg{note: "Credit deleted"}
	}
}
