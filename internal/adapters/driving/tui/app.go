// Package tui provides the interactive terminal interface for asking
// questions against the study corpus, following the Elm architecture
// used by Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// answerMsg carries the result of an ask command.
type answerMsg struct {
	answer *domain.Answer
	err    error
}

// topicsMsg carries the topic list loaded at startup.
type topicsMsg struct {
	topics []domain.Topic
	err    error
}

// App is the TUI application model. It implements tea.Model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input  textinput.Model
	topics []domain.Topic
	answer *domain.Answer
	err    error

	asking bool
	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "what is the nucleus?"
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  input,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init loads the topic list.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadTopics())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(a.input.Value())
			if query == "" || a.asking {
				return a, nil
			}
			a.asking = true
			a.err = nil
			return a, a.ask(query)
		}

	case answerMsg:
		a.asking = false
		a.answer = msg.answer
		a.err = msg.err
		return a, nil

	case topicsMsg:
		if msg.err == nil {
			a.topics = msg.topics
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("studium"))
	b.WriteString("  ")
	b.WriteString(a.styles.Faint.Render(fmt.Sprintf("%d topics", len(a.topics))))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	switch {
	case a.asking:
		b.WriteString(a.styles.Faint.Render("thinking..."))
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("error: %v", a.err)))
	case a.answer != nil:
		b.WriteString(a.renderAnswer())
	default:
		b.WriteString(a.styles.Faint.Render("Ask a question about your notes. Esc to quit."))
	}

	b.WriteString("\n")
	return b.String()
}

// renderAnswer formats the last answer.
func (a *App) renderAnswer() string {
	var b strings.Builder

	if !a.answer.Found() {
		b.WriteString(a.styles.Faint.Render("No matching topic found."))
		return b.String()
	}

	b.WriteString(a.styles.TopicName.Render(a.answer.Topic.Name))
	b.WriteString(a.styles.Faint.Render(fmt.Sprintf("  (%.2f)", a.answer.TopicScore)))
	b.WriteString("\n")

	if a.answer.Concept != nil {
		b.WriteString(a.styles.Concept.Render(a.answer.Concept.Term))
		b.WriteString("\n")
		b.WriteString(a.styles.Definition.Render(a.answer.Concept.Definition))
	} else {
		b.WriteString(a.styles.Faint.Render("No specific concept matched."))
	}
	return b.String()
}

// ask invokes the ask service off the update loop.
func (a *App) ask(query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.ports.Ask.Ask(a.ctx, query)
		return answerMsg{answer: answer, err: err}
	}
}

// loadTopics fetches the topic list for the header.
func (a *App) loadTopics() tea.Cmd {
	return func() tea.Msg {
		if a.ports.Study == nil {
			return topicsMsg{}
		}
		topics, err := a.ports.Study.ListTopics(a.ctx)
		return topicsMsg{topics: topics, err: err}
	}
}
