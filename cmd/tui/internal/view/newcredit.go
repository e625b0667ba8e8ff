package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmendezv/fiado/internal/credit"
)

type NewCreditModel struct {
	CommonModel
	creditSvc *credit.Service

	form   *huh.Form
	saving bool
	status string

	// Form bindings
	name     string
	lastName string
	idNumber string
	phone    string
	address  string
	amount   string
	detail   string
}

func NewNewCreditModel(creditSvc *credit.Service) NewCreditModel {
	m := NewCreditModel{creditSvc: creditSvc}
	m.form = m.newForm()

	return m
}

func (m NewCreditModel) Title() string     { return "New Credit" }
func (m NewCreditModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m *NewCreditModel) newForm() *huh.Form {
	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("First name").Value(&m.name).Validate(required("first name")),
			huh.NewInput().Key("last_name").Title("Last name").Value(&m.lastName).Validate(required("last name")),
			huh.NewInput().Key("id_number").Title("ID number").Value(&m.idNumber).Validate(required("id number")),
			huh.NewInput().Key("phone").Title("Phone").Value(&m.phone).Validate(required("phone")),
			huh.NewInput().Key("address").Title("Address").Value(&m.address).Validate(required("address")),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.amount).
				Validate(func(s string) error {
					cents, err := ParseAmount(s)
					if err != nil {
						return fmt.Errorf("invalid amount")
					}
					if cents <= 0 {
						return fmt.Errorf("amount must be greater than zero")
					}
					return nil
				}),
			huh.NewText().Key("detail").Title("Details").Value(&m.detail).Lines(3),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m NewCreditModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m NewCreditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case creditSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Credit created for %s %s", msg.credit.ClientName, msg.credit.ClientLastName)
			m.resetForm()
			return m, m.form.Init()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true

	return m, m.saveCmd()
}

func (m *NewCreditModel) resetForm() {
	m.name = ""
	m.lastName = ""
	m.idNumber = ""
	m.phone = ""
	m.address = ""
	m.amount = ""
	m.detail = ""
	m.form = m.newForm()
}

func (m NewCreditModel) View() string {
	if m.saving {
		return Notice("Saving credit...")
	}

	content := m.form.View()
	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("New Credit\n\n" + content)
}

type creditSavedMsg struct {
	credit *credit.Credit
	err    error
}

func (m NewCreditModel) saveCmd() tea.Cmd {
	amount, err := ParseAmount(m.amount)
	if err != nil {
		return func() tea.Msg { return creditSavedMsg{err: err} }
	}

	params := credit.CreateParams{
		ClientName:     m.name,
		ClientLastName: m.lastName,
		IDNumber:       m.idNumber,
		Phone:          m.phone,
		Address:        m.address,
		TotalAmount:    amount,
		DetailedInfo:   m.detail,
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		c, err := m.creditSvc.Create(ctx, params)
		return creditSavedMsg{credit: c, err: err}
	}
}
