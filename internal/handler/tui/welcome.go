package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.parent.send(showSearchMsg{})
		case tea.KeyEsc:
			m.parent.cancelApp()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(welcomeTitleStyle.Render("▶ Video Browser TUI"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Search YouTube, read the details and open videos in your browser."))
	b.WriteString("\n\n")

	if m.parent.opts.APIKeyMissing {
		b.WriteString(errorMessageStyle.Render("No API key configured: set YOUTUBE_API_KEY in the environment or in .env"))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Press Enter to start"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("(Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}
