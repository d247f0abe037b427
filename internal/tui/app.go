package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bunchhieng/lv/internal/browser"
	"github.com/bunchhieng/lv/internal/collection"
	"github.com/bunchhieng/lv/internal/model"
)

const statusTimeout = 3 * time.Second

type mode int

const (
	modeList mode = iota
	modeSearch
	modeConfirmDelete
	modeForm
)

type appModel struct {
	ctx      context.Context
	links    *collection.Collection
	opener   func(url string) error
	visible  []model.Link
	selected int
	query    string
	mode     mode
	deleteID string
	form     linkForm
	width    int
	height   int

	status    string
	statusErr bool
	statusSeq int
}

type statusMsg struct {
	text  string
	isErr bool
}

// clearStatusMsg dismisses the status message it was scheduled for.
type clearStatusMsg struct {
	seq int
}

func initialModel(ctx context.Context, links *collection.Collection) appModel {
	m := appModel{
		ctx:    ctx,
		links:  links,
		opener: browser.Open,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		cmd := m.setStatus(msg.text, msg.isErr)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeForm:
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "g", "home":
		m.selected = 0

	case "G", "end":
		m.selected = max(len(m.visible)-1, 0)

	case "o", "enter":
		return m, m.openSelected()

	case "a":
		m.form = newForm()
		m.mode = modeForm

	case "e":
		if link, ok := m.current(); ok {
			m.form = editForm(link)
			m.mode = modeForm
		}

	case "r", "x":
		if link, ok := m.current(); ok {
			m.deleteID = link.ID
			m.mode = modeConfirmDelete
		}

	case "/":
		m.mode = modeSearch

	case "esc":
		if m.query != "" {
			m.query = ""
			m.refresh()
		}

	case "?":
		cmd := m.setStatus("q=quit j/k=nav o=open a=add e=edit r=remove /=search esc=clear", false)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.query = ""
	case tea.KeyEnter:
		m.mode = modeList
	case tea.KeyBackspace:
		if m.query != "" {
			_, size := utf8.DecodeLastRuneInString(m.query)
			m.query = m.query[:len(m.query)-size]
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteID
		m.deleteID = ""
		m.mode = modeList
		if err := m.links.Delete(m.ctx, id); err != nil {
			cmd := m.setStatus(fmt.Sprintf("Error: %v", err), true)
			return m, cmd
		}
		m.refresh()
		cmd := m.setStatus("Link deleted successfully!", false)
		return m, cmd

	case "n", "N", "esc":
		m.deleteID = ""
		m.mode = modeList
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.form = linkForm{}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	case tea.KeyEnter:
		return m.submitForm()
	}
	m.form.edit(msg)
	return m, nil
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	editing := m.form.editing()
	link, v, err := m.links.Submit(m.ctx, m.form.editingID, m.form.draft())
	switch {
	case errors.Is(err, model.ErrInvalidLink):
		m.form.validation = v
		cmd := m.setStatus("Title and a valid URL are required!", true)
		return m, cmd
	case err != nil:
		m.mode = modeList
		m.form = linkForm{}
		cmd := m.setStatus(fmt.Sprintf("Error: %v", err), true)
		return m, cmd
	}

	m.mode = modeList
	m.form = linkForm{}
	m.refresh()
	m.selectID(link.ID)

	if editing {
		cmd := m.setStatus("Link updated successfully!", false)
		return m, cmd
	}
	cmd := m.setStatus("Link added successfully!", false)
	return m, cmd
}

// setStatus shows text and schedules its dismissal. A later message
// invalidates earlier dismissals.
func (m *appModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *appModel) refresh() {
	m.visible = m.links.Filtered(m.query)
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *appModel) selectID(id string) {
	for i, l := range m.visible {
		if l.ID == id {
			m.selected = i
			return
		}
	}
}

func (m *appModel) current() (model.Link, bool) {
	if len(m.visible) == 0 || m.selected >= len(m.visible) {
		return model.Link{}, false
	}
	return m.visible[m.selected], true
}

func (m *appModel) openSelected() tea.Cmd {
	link, ok := m.current()
	if !ok {
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		if err := opener(link.URL); err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isErr: true}
		}
		return statusMsg{text: fmt.Sprintf("Opened: %s", link.URL)}
	}
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.renderForm())
	case modeConfirmDelete:
		b.WriteString(m.renderDeleteConfirmation())
	default:
		if m.mode == modeSearch || m.query != "" {
			b.WriteString(m.renderSearchBar())
			b.WriteString("\n")
		}
		b.WriteString(m.renderList())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	return b.String()
}

// Run starts the TUI over links and blocks until the user quits.
func Run(ctx context.Context, links *collection.Collection) error {
	p := tea.NewProgram(initialModel(ctx, links), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
