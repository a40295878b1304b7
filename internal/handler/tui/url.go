package tui

import (
	"fmt"
	"strings"

	"TUI_video_browser/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// URLModel opens a video directly from a pasted link or id.
type URLModel struct {
	parent *AppModel
	input  textinput.Model
	err    error
}

func NewURLModel(parent *AppModel) *URLModel {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=…"
	ti.CharLimit = 300
	ti.Width = 60

	return &URLModel{parent: parent, input: ti}
}

func (m *URLModel) Init() tea.Cmd {
	m.input.Reset()
	m.err = nil
	return m.input.Focus()
}

func (m *URLModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			// Volta para a busca
			return m, m.parent.send(showSearchMsg{})
		case tea.KeyEnter:
			id, err := domain.ParseVideoID(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.parent.logger.Info("URLModel: opening video " + id)
			return m, m.parent.send(showWatchMsg{videoID: id})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *URLModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Open by URL"))
	b.WriteString("\n")
	b.WriteString("Paste a YouTube video link or id and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(promptStyle.Render("enter: open • esc: back to search"))
	return docStyle.Render(b.String())
}
