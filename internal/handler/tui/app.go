package tui

import (
	"context"
	"fmt"
	"time"

	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/ports"
	"TUI_video_browser/internal/core/store"
	"TUI_video_browser/internal/core/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewSearch
	viewWatch
	viewURL
)

// Options carries the settings the screens need from configuration.
type Options struct {
	SearchDebounce time.Duration
	APIKeyMissing  bool
}

type AppModel struct {
	// Dependências injetadas
	catalog     usecases.CatalogUseCase
	searchStore *store.SearchStore
	logger      ports.LoggerPort
	opts        Options
	openURL     func(string) error

	welcomeModel *WelcomeModel
	searchModel  *SearchModel
	watchModel   *WatchModel
	urlModel     *URLModel

	currentView currentView

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	catalog usecases.CatalogUseCase,
	searchStore *store.SearchStore,
	log ports.LoggerPort,
	opts Options,
) *AppModel {
	// Cria contexto principal que será cancelado no Quit
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		catalog:     catalog,
		searchStore: searchStore,
		logger:      log.With("tui"),
		opts:        opts,
		openURL:     browser.OpenURL,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.searchModel = NewSearchModel(m)
	m.watchModel = NewWatchModel(m, "")
	m.urlModel = NewURLModel(m)

	m.currentView = viewWelcome
	return m
}

// SubscribeStore tells the running program whenever the store changes. The
// send happens on its own goroutine because the store notifies from inside
// Update, so signals may arrive in any order; the model always re-reads the
// store instead of trusting a snapshot.
func SubscribeStore(p *tea.Program, s *store.SearchStore) func() {
	return s.Subscribe(func(domain.SearchPageState) {
		go p.Send(storeUpdatedMsg{})
	})
}

func (m *AppModel) Init() tea.Cmd {
	return m.welcomeModel.Init()
}

// Mensagens de navegação que os sub-modelos usam
type showWelcomeMsg struct{}
type showSearchMsg struct{}
type showWatchMsg struct{ videoID string }
type showURLMsg struct{}

// storeUpdatedMsg signals that the search store changed.
type storeUpdatedMsg struct{}

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.logger.Info("Ctrl+C pressed, quitting")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeUpdatedMsg:
		// the search screen keeps following the store even when hidden
		m.searchModel.applyState(m.searchStore.State())
		return m, nil

	case pageFetchedMsg:
		_, cmd := m.searchModel.Update(msg)
		return m, cmd

	case showWelcomeMsg:
		m.currentView = viewWelcome
		return m, m.welcomeModel.Init()

	case showSearchMsg:
		m.currentView = viewSearch
		return m, m.searchModel.Init()

	case showWatchMsg:
		m.currentView = viewWatch
		wm := NewWatchModel(m, msg.videoID)
		m.watchModel = wm
		return m, wm.Init()

	case showURLMsg:
		m.currentView = viewURL
		return m, m.urlModel.Init()
	}

	// Delegamos o Update ao submodel da tela atual
	var cmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		_, cmd = m.welcomeModel.Update(msg)
	case viewSearch:
		_, cmd = m.searchModel.Update(msg)
	case viewWatch:
		_, cmd = m.watchModel.Update(msg)
	case viewURL:
		_, cmd = m.urlModel.Update(msg)
	}

	return m, cmd
}

func (m *AppModel) View() string {
	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewSearch:
		return m.searchModel.View()
	case viewWatch:
		return m.watchModel.View()
	case viewURL:
		return m.urlModel.View()
	default:
		return fmt.Sprintf("Unknown view %d", m.currentView)
	}
}

// listHeight is how many list rows fit once the fixed chrome is taken out.
func (m *AppModel) listHeight(chrome int) int {
	if m.height == 0 {
		return 10
	}
	if h := m.height - chrome; h > 3 {
		return h
	}
	return 3
}
