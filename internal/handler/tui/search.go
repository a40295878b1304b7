package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchChrome is the number of lines the search screen uses around the list.
const searchChrome = 12

type searchDebounceMsg struct{ seq int }
type pageFetchedMsg struct{ err error }

type SearchModel struct {
	parent  *AppModel
	input   textinput.Model
	spinner spinner.Model

	state  domain.SearchPageState
	cursor int

	// seq tags debounce ticks; only the tick matching the latest edit submits
	seq         int
	submitted   string
	started     bool
	listFocused bool
}

func NewSearchModel(parent *AppModel) *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search videos"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &SearchModel{
		parent:  parent,
		input:   ti,
		spinner: sp,
		state:   parent.searchStore.State(),
	}
}

func (m *SearchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}

	// first visit: load the default listing for an empty query
	if !m.started {
		m.started = true
		m.parent.logger.Info("SearchModel: first Init, loading default listing")
		cmds = append(cmds, m.submit(m.input.Value()))
	}

	return tea.Batch(cmds...)
}

// submit starts a new search: reset the store, then ask for the first page.
func (m *SearchModel) submit(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	m.seq++
	m.submitted = query
	m.cursor = 0

	m.parent.searchStore.SetQuery(query)
	m.applyState(m.parent.searchStore.State())

	return m.fetchNextPage()
}

func (m *SearchModel) fetchNextPage() tea.Cmd {
	s := m.parent.searchStore
	ctx := m.parent.appContext

	return func() tea.Msg {
		return pageFetchedMsg{err: s.FetchNextPage(ctx)}
	}
}

func (m *SearchModel) loadMore() tea.Cmd {
	if m.state.Loading || !m.state.HasMore() {
		return nil
	}
	m.parent.logger.Info(fmt.Sprintf("SearchModel: loading more results for %q", m.state.Query))
	return m.fetchNextPage()
}

func (m *SearchModel) debounce() tea.Cmd {
	seq := m.seq
	d := m.parent.opts.SearchDebounce
	if d <= 0 {
		return func() tea.Msg { return searchDebounceMsg{seq: seq} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m *SearchModel) applyState(state domain.SearchPageState) {
	m.state = state
	if m.cursor >= len(m.state.Results) {
		m.cursor = max(len(m.state.Results)-1, 0)
	}
}

func (m *SearchModel) setListFocus(focused bool) tea.Cmd {
	m.listFocused = focused
	if focused {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageFetchedMsg:
		if msg.err != nil && !errors.Is(msg.err, store.ErrFetchInFlight) && !errors.Is(msg.err, store.ErrStaleResponse) {
			m.parent.logger.Warning("SearchModel: page fetch failed: " + msg.err.Error())
		}
		m.applyState(m.parent.searchStore.State())
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if strings.TrimSpace(m.input.Value()) == m.submitted {
			return m, nil
		}
		return m, m.submit(m.input.Value())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.listFocused {
				return m, m.setListFocus(false)
			}
			m.parent.cancelApp()
			return m, tea.Quit

		case "tab":
			return m, m.setListFocus(!m.listFocused)

		case "ctrl+n":
			return m, m.loadMore()

		case "ctrl+o":
			return m, m.parent.send(showURLMsg{})

		case "enter":
			if m.listFocused && len(m.state.Results) > 0 {
				id := m.state.Results[m.cursor].ID
				return m, m.parent.send(showWatchMsg{videoID: id})
			}
			return m, m.submit(m.input.Value())

		case "up":
			m.moveUp()
			return m, nil

		case "down":
			return m, m.moveDown()
		}

		if m.listFocused {
			switch msg.String() {
			case "k":
				m.moveUp()
			case "j":
				return m, m.moveDown()
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.seq++
			return m, tea.Batch(cmd, m.debounce())
		}
		return m, cmd
	}

	if !m.listFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SearchModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// moveDown past the last row asks for the next page.
func (m *SearchModel) moveDown() tea.Cmd {
	if m.cursor < len(m.state.Results)-1 {
		m.cursor++
		return nil
	}
	return m.loadMore()
}

func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(welcomeTitleStyle.UnsetPadding().Render("Search") + "\n" + m.input.View()))
	b.WriteString("\n")

	switch {
	case m.state.Loading:
		b.WriteString(m.spinner.View() + " Loading videos…")
	case m.state.Error != "":
		b.WriteString(errorMessageStyle.Render("Error: " + m.state.Error))
	default:
		b.WriteString(statusMessageStyle.Render(m.statusLine()))
	}
	b.WriteString("\n\n")

	if len(m.state.Results) == 0 && !m.state.Loading && m.state.Error == "" && m.submitted != "" {
		b.WriteString(metaStyle.Render("No videos found."))
		b.WriteString("\n")
	}

	width := m.parent.width - 8
	rows := m.parent.listHeight(searchChrome) / 2
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.state.Results))

	for i := start; i < end; i++ {
		v := m.state.Results[i]
		title := truncate(v.Title, width)
		meta := metaStyle.Render(truncate(searchMeta(v), width))

		if m.listFocused && i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(title))
		} else {
			b.WriteString(listItemStyle.Render(title))
		}
		b.WriteString("\n")
		b.WriteString(listItemStyle.Render(meta))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("tab: focus list • ↑/↓: move • enter: search/open • ctrl+n: more • ctrl+o: open URL • esc: quit"))

	return docStyle.Render(b.String())
}

func (m *SearchModel) statusLine() string {
	if !m.started {
		return ""
	}
	label := "videos"
	if m.state.Query != "" {
		label = fmt.Sprintf("videos for %q", m.state.Query)
	}
	line := fmt.Sprintf("%d %s", len(m.state.Results), label)
	if m.state.HasMore() {
		line += " • more available"
	}
	return line
}

// searchMeta renders a search result. Search results carry raw upstream
// values, so they are formatted here.
func searchMeta(v domain.VideoSummary) string {
	parts := []string{v.ChannelTitle, domain.FormatDuration(v.Duration), domain.FormatCountString(v.ViewCount) + " views"}
	if !v.PublishedAt.IsZero() {
		parts = append(parts, v.PublishedAt.Format("2006-01-02"))
	}
	return strings.Join(parts, " • ")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
