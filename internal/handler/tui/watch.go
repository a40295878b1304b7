package tui

import (
	"errors"
	"fmt"
	"strings"

	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/usecases"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxDescriptionLines = 6
	maxCommentsShown    = 10
)

type watchLoadedMsg struct {
	videoID string
	page    domain.WatchPage
}
type browserOpenedMsg struct {
	url string
	err error
}

type WatchModel struct {
	parent  *AppModel
	videoID string

	page    domain.WatchPage
	loading bool
	err     error
	spinner spinner.Model

	composer  textarea.Model
	composing bool

	cursor        int
	statusMessage string
}

func NewWatchModel(parent *AppModel, videoID string) *WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ta := textarea.New()
	ta.Placeholder = "Add a comment…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetWidth(60)
	ta.SetHeight(3)

	return &WatchModel{
		parent:   parent,
		videoID:  videoID,
		loading:  videoID != "",
		spinner:  sp,
		composer: ta,
	}
}

func (m *WatchModel) Init() tea.Cmd {
	if m.videoID == "" {
		return nil
	}

	m.loading = true
	m.err = nil
	m.parent.logger.Info("WatchModel: Init, loading video " + m.videoID)

	catalog := m.parent.catalog
	ctx := m.parent.appContext
	id := m.videoID

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return watchLoadedMsg{videoID: id, page: catalog.LoadWatchPage(ctx, id)}
	})
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchLoadedMsg:
		if msg.videoID != m.videoID {
			return m, nil
		}
		m.loading = false
		m.page = msg.page
		m.cursor = 0
		if m.page.Video == nil {
			m.err = fmt.Errorf("video %s could not be loaded", m.videoID)
		}
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.parent.logger.Error("Failed to open browser", msg.err)
			m.statusMessage = ""
			m.err = fmt.Errorf("could not open the browser: %w", msg.err)
			return m, nil
		}
		m.statusMessage = "Opened " + msg.url
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.composing {
			return m, m.updateComposer(msg)
		}

		switch msg.String() {
		case "esc", "backspace":
			return m, m.parent.send(showSearchMsg{})
		case "o":
			return m, m.openInBrowser()
		case "c":
			if m.loading || m.page.Video == nil {
				return m, nil
			}
			m.composing = true
			m.statusMessage = ""
			return m, m.composer.Focus()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.page.Related)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.page.Related) > 0 {
				return m, m.parent.send(showWatchMsg{videoID: m.page.Related[m.cursor].ID})
			}
		}
		return m, nil
	}

	if m.composing {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WatchModel) updateComposer(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.composer.Blur()
		return nil
	case "ctrl+s":
		return m.postComment()
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return cmd
}

// postComment adds the comment to the top of the list right away. It is
// only kept for this session.
func (m *WatchModel) postComment() tea.Cmd {
	comment, err := m.parent.catalog.NewLocalComment(m.composer.Value())
	if err != nil {
		if errors.Is(err, usecases.ErrEmptyComment) {
			m.statusMessage = "Write something before posting"
			return nil
		}
		m.parent.logger.Error("Failed to create comment", err)
		m.err = err
		return nil
	}

	m.page.Comments = usecases.PrependComment(m.page.Comments, comment)
	m.composer.Reset()
	m.composer.Blur()
	m.composing = false
	m.statusMessage = "Comment posted"
	return nil
}

func (m *WatchModel) watchURL() string {
	if m.page.Video != nil {
		return m.page.Video.WatchURL()
	}
	return domain.VideoSummary{ID: m.videoID}.WatchURL()
}

func (m *WatchModel) openInBrowser() tea.Cmd {
	if m.videoID == "" {
		return nil
	}

	url := m.watchURL()
	open := m.parent.openURL
	log := m.parent.logger

	return func() tea.Msg {
		log.Info("Opening " + url)
		return browserOpenedMsg{url: url, err: open(url)}
	}
}

func (m *WatchModel) View() string {
	if m.loading {
		return docStyle.Render(m.spinner.View() + " Loading video…")
	}

	var b strings.Builder
	width := m.parent.width - 8
	if width <= 0 {
		width = 80
	}

	if m.page.Video == nil {
		if m.err != nil {
			b.WriteString(errorMessageStyle.Render(m.err.Error()))
		}
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("o: try in browser • esc: back"))
		return docStyle.Render(b.String())
	}

	v := m.page.Video
	b.WriteString(videoTitleStyle.Render(truncate(v.Title, width)))
	b.WriteString("\n")

	channel := v.ChannelTitle
	if v.SubscriberCount != "" {
		channel += fmt.Sprintf(" • %s subscribers", v.SubscriberCount)
	}
	b.WriteString(authorStyle.Render(channel))
	b.WriteString("\n")

	stats := []string{v.ViewCount + " views", v.LikeCount + " likes", v.Duration}
	if !v.PublishedAt.IsZero() {
		stats = append(stats, v.PublishedAt.Format("Jan 2, 2006"))
	}
	b.WriteString(metaStyle.Render(strings.Join(stats, " • ")))
	b.WriteString("\n")
	b.WriteString(urlStyle.Render(v.WatchURL()))
	b.WriteString("\n")

	if desc := strings.TrimSpace(v.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(clampLines(lipgloss.NewStyle().Width(width).Render(desc), maxDescriptionLines))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Related"))
	b.WriteString("\n")
	if len(m.page.Related) == 0 {
		b.WriteString(metaStyle.Render("No related videos."))
		b.WriteString("\n")
	}
	for i, r := range m.page.Related {
		line := truncate(fmt.Sprintf("%s • %s • %s", r.Title, r.ChannelTitle, r.Duration), width)
		if i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(line))
		} else {
			b.WriteString(listItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Comments (%d)", len(m.page.Comments))))
	b.WriteString("\n")
	if m.composing {
		b.WriteString(m.composer.View())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("ctrl+s: post • esc: cancel"))
		b.WriteString("\n")
	}
	for i, c := range m.page.Comments {
		if i == maxCommentsShown {
			b.WriteString(metaStyle.Render(fmt.Sprintf("… %d more", len(m.page.Comments)-maxCommentsShown)))
			b.WriteString("\n")
			break
		}
		b.WriteString(renderComment(c, width))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.statusMessage != "" {
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString(promptStyle.Render("↑/↓: related • enter: watch related • c: comment • o: open in browser • esc: back"))

	return docStyle.Render(b.String())
}

func renderComment(c domain.Comment, width int) string {
	author := authorStyle.Render(c.AuthorDisplayName)
	if c.IsLocal() {
		author = localCommentStyle.Render(c.AuthorDisplayName + " (you)")
	}

	header := author
	if !c.PublishedAt.IsZero() {
		header += metaStyle.Render(" • " + c.PublishedAt.Format("2006-01-02"))
	}
	if c.LikeCount > 0 {
		header += metaStyle.Render(" • " + domain.FormatCount(c.LikeCount) + " likes")
	}

	body := clampLines(lipgloss.NewStyle().Width(width).Render(c.Text), 3)
	return listItemStyle.Render(header+"\n"+body) + "\n"
}

func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n…"
}
