package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/ensemble"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/trknhr/kanarank/internal/utils"
)

type Predictor interface {
	ProgressivePredict(req *entity.Request) (<-chan ensemble.Prediction, error)
}

type Committer interface {
	Commit(sentence []store.Commit) error
}

type tuiModel struct {
	input      textinput.Model
	list       list.Model
	engine     Predictor
	newRequest func(key string) *entity.Request
	committer  Committer

	lastInput string
	width     int
	height    int
	loading   bool
	history   *entity.History
	sentence  []store.Commit
	err       error
}

var (
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	committedStyle   = lipgloss.NewStyle().Underline(true)
)

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(candidateItem)
	if !ok {
		return
	}
	str := i.c.Value
	if index == m.Index() {
		str = selectedStyle.Render("> " + str)
	} else {
		str = "  " + str
	}
	if i.c.Description != "" {
		str += " " + descriptionStyle.Render(i.c.Description)
	}
	fmt.Fprint(w, str)
}

type candidateItem struct{ c entity.Candidate }

func (i candidateItem) Title() string       { return i.c.Value }
func (i candidateItem) Description() string { return i.c.Description }
func (i candidateItem) FilterValue() string { return i.c.Key }

// NewTuiModel starts a session. Selected candidates build up a sentence that is handed to committer
// (when non-nil) as the session ends with Enter on an empty input.
func NewTuiModel(engine Predictor, newRequest func(key string) *entity.Request, committer Committer, initialInput string) *tuiModel {
	input := textinput.New()
	input.Placeholder = "ひらがなで入力..."
	input.SetValue(initialInput)
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 40, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &tuiModel{
		input:      input,
		list:       l,
		engine:     engine,
		newRequest: newRequest,
		committer:  committer,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

type predictionMsg struct {
	key  string
	pred ensemble.Prediction
	next <-chan ensemble.Prediction
	err  error
}

func (m *tuiModel) fetchCandidatesCmd(key string) tea.Cmd {
	req := m.newRequest(key)
	req.History = m.history
	engine := m.engine
	return func() tea.Msg {
		ch, err := engine.ProgressivePredict(req)
		if err != nil {
			return predictionMsg{key: key, err: err}
		}
		return waitPrediction(key, ch)()
	}
}

func waitPrediction(key string, ch <-chan ensemble.Prediction) tea.Cmd {
	return func() tea.Msg {
		pred, ok := <-ch
		if !ok {
			return predictionMsg{key: key, pred: ensemble.Prediction{Complete: true}}
		}
		return predictionMsg{key: key, pred: pred, next: ch}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-6)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.sentence = nil
			return m, tea.Quit

		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				m.flush()
				return m, tea.Quit
			}
			if item, ok := m.list.SelectedItem().(candidateItem); ok {
				m.accept(item.c)
			}

		case tea.KeyUp, tea.KeyDown:
			m.input.Blur()

		default:
			if !m.input.Focused() {
				m.input.Focus()
			}
			m.input, _ = m.input.Update(msg)
		}

	case predictionMsg:
		if msg.key != m.lastInput {
			// discard outdated candidates
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.loading = false
			return m, nil
		}
		m.err = nil
		m.loading = !msg.pred.Complete
		if len(msg.pred.Candidates) > 0 || msg.pred.Complete {
			items := make([]list.Item, 0, len(msg.pred.Candidates))
			for _, c := range msg.pred.Candidates {
				items = append(items, candidateItem{c})
			}
			m.list.SetItems(items)
			m.list.ResetSelected()
		}
		if !msg.pred.Complete && msg.next != nil {
			cmds = append(cmds, waitPrediction(msg.key, msg.next))
		}
	}

	m.list, _ = m.list.Update(msg)

	key := utils.NormalizeKey(strings.TrimSpace(m.input.Value()))
	if key != m.lastInput {
		m.lastInput = key
		m.loading = false
		if key != "" {
			m.loading = true
			cmds = append(cmds, m.fetchCandidatesCmd(key))
		} else {
			m.list.SetItems([]list.Item{})
		}
	}

	return m, tea.Batch(cmds...)
}

// accept commits c as the next word and clears the input for the following one.
func (m *tuiModel) accept(c entity.Candidate) {
	m.sentence = append(m.sentence, store.Commit{Key: c.Key, Value: c.Value, LeftID: c.LeftID, RightID: c.RightID})
	m.history = &entity.History{Key: c.Key, Value: c.Value, LeftID: c.LeftID, RightID: c.RightID, Cost: c.Cost}
	m.input.SetValue("")
	m.input.Focus()
}

func (m *tuiModel) flush() {
	if m.committer == nil || len(m.sentence) == 0 {
		return
	}
	if err := m.committer.Commit(m.sentence); err != nil {
		logger.Error("failed to record the sentence: %v", err)
	}
}

func (m *tuiModel) View() string {
	s := "kanarank\n\n"
	if text := m.SelectedText(); text != "" {
		s += committedStyle.Render(text) + "\n"
	}
	s += m.input.View() + "\n\n"
	if m.err != nil {
		s += fmt.Sprintf("error: %v\n", m.err)
	}
	s += m.list.View() + "\n"
	if m.loading {
		s += "loading...\n"
	}
	s += "(Enter = select, Enter on empty input = finish, Ctrl+C = quit)"
	return s
}

// SelectedText is the sentence built so far.
func (m *tuiModel) SelectedText() string {
	var b strings.Builder
	for _, c := range m.sentence {
		b.WriteString(c.Value)
	}
	return b.String()
}
