package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dmendezv/fiado/cmd/tui/internal/view"
	"github.com/dmendezv/fiado/internal/config"
	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/credit/jsonstore"
	creditStore "github.com/dmendezv/fiado/internal/credit/store"
	"github.com/dmendezv/fiado/internal/database"
)

type model struct {
	creditSvc *credit.Service

	currentView View

	creditsView   view.CreditsModel
	newCreditView view.NewCreditModel
	clientsView   view.ClientsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewCredits   View = 1
	ViewNewCredit View = 2
	ViewClients   View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	creditSvc := credit.NewService(repo)

	return model{
		creditSvc:     creditSvc,
		currentView:   ViewMenu,
		creditsView:   view.NewCreditsModel(creditSvc),
		newCreditView: view.NewNewCreditModel(creditSvc),
		clientsView:   view.NewClientsModel(creditSvc),
	}
}

func openRepository(cfg *config.Config) (credit.Repository, error) {
	switch cfg.Storage.Driver {
	case config.StorageFile:
		return jsonstore.Open(cfg.Storage.Path)
	case config.StoragePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return creditStore.New(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCredits
				m.creditsView = view.NewCreditsModel(m.creditSvc)

				return m, m.creditsView.Init()
			case "2":
				m.currentView = ViewNewCredit
				m.newCreditView = view.NewNewCreditModel(m.creditSvc)

				return m, m.newCreditView.Init()
			case "3":
				m.currentView = ViewClients
				m.clientsView = view.NewClientsModel(m.creditSvc)

				return m, m.clientsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCredits:
		var newModel tea.Model
		newModel, cmd = m.creditsView.Update(msg)
		m.creditsView = newModel.(view.CreditsModel)
	case ViewNewCredit:
		var newModel tea.Model
		newModel, cmd = m.newCreditView.Update(msg)
		m.newCreditView = newModel.(view.NewCreditModel)
	case ViewClients:
		var newModel tea.Model
		newModel, cmd = m.clientsView.Update(msg)
		m.clientsView = newModel.(view.ClientsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Fiado TUI\n\n" +
				"1. Credits\n" +
				"2. New Credit\n" +
				"3. Clients\n\n" +
				"q. Quit",
		)
	case ViewCredits:
		return m.creditsView.View()
	case ViewNewCredit:
		return m.newCreditView.View()
	case ViewClients:
		return m.clientsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
