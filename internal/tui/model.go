// Package tui is the interactive follow-up mode: after a document is
// processed, further questions run against its existing index.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docqa/internal/domain"
	"docqa/internal/service"
)

// AskPort is the TUI-facing subset of the pipeline service.
type AskPort interface {
	Ask(ctx context.Context, s *service.Session, query string) (domain.AnswerRecord, []domain.SearchResult, error)
}

// Model is the Bubble Tea model for the interactive QA session.
type Model struct {
	pipeline AskPort
	session  *service.Session
	input    textinput.Model
	viewport viewport.Model
	record   domain.AnswerRecord
	results  []domain.SearchResult
	status   string
	ready    bool
}

// New creates a TUI model over one processed document. The initial
// answer from the batch run is shown before the first keystroke.
func New(pipeline AskPort, session *service.Session) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Ask a question about the document and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		pipeline: pipeline,
		session:  session,
		input:    ti,
		viewport: vp,
		record:   session.Record,
		status:   fmt.Sprintf("Loaded %s (%d sentences).", session.Document.Name, len(session.Sentences)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + summary
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderAnswer())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				rec, results, err := m.pipeline.Ask(context.Background(), m.session, q)
				if err != nil {
					m.status = "Error: " + err.Error()
				} else {
					m.record = rec
					m.results = results
					m.status = fmt.Sprintf("Answered %q", q)
					m.input.SetValue("")
				}
				m.viewport.SetContent(m.renderAnswer())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current answer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("docqa — " + m.session.Document.Name)
	summary := summaryStyle.Render(m.session.Summary)
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + answer + "\n" + input + "\n" + status
}

func (m Model) renderAnswer() string {
	if m.record.Answer == "" {
		return "No answer yet."
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render("Q: " + m.record.Question))
	b.WriteString("\n\n")
	b.WriteString(m.record.Answer)
	if len(m.results) > 0 {
		b.WriteString("\n\n")
		b.WriteString(contextHeaderStyle.Render("Context:"))
		for _, r := range m.results {
			b.WriteString(fmt.Sprintf("\n  [%d] %s", r.Sentence.Index, r.Sentence.Text))
		}
	}
	return b.String()
}

var (
	answerBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	questionStyle      = lipgloss.NewStyle().Bold(true)
	contextHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
