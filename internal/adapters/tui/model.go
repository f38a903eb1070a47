// Package tui is the terminal front end of the phonebook. It renders the
// live directory, narrows it with an incremental search, and adds, deletes
// and sorts contacts through the store. The view is rebuilt from the store on
// every change event, so edits made elsewhere (autosave, a concurrent HTTP
// server) show up without polling.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeAdd
)

// changeBuffer bounds queued change events. Events only trigger a rebuild,
// so dropping some while the buffer is full loses nothing.
const changeBuffer = 32

// changeMsg carries a store change into the update loop.
type changeMsg ports.Change

// saveResultMsg reports the outcome of the save issued on quit.
type saveResultMsg struct{ err error }

// Model is the bubbletea model for the phonebook.
type Model struct {
	ctx    context.Context
	store  ports.ContactStore
	logger *slog.Logger

	changes     chan ports.Change
	unsubscribe func()

	mode     mode
	search   textinput.Model
	form     addForm
	view     []*contact.Contact
	cursor   int
	nextSort contact.SortField

	status    string
	err       error
	saveFails int
	quitting  bool
	width     int
}

// New creates a model bound to store and subscribes it to store changes.
// Call Close when the program exits.
func New(ctx context.Context, store ports.ContactStore, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search name or phone"
	search.CharLimit = 128

	changes := make(chan ports.Change, changeBuffer)
	unsubscribe := store.Subscribe(func(c ports.Change) {
		select {
		case changes <- c:
		default:
		}
	})

	m := Model{
		ctx:         ctx,
		store:       store,
		logger:      logger,
		changes:     changes,
		unsubscribe: unsubscribe,
		search:      search,
		nextSort:    contact.SortByName,
	}
	m.refresh()
	return m
}

// Close stops change delivery.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg(c)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.search.Width = max(msg.Width-8, 10)
		return m, nil

	case changeMsg:
		m.refresh()
		return m, m.waitForChange()

	case saveResultMsg:
		if msg.err != nil {
			m.saveFails++
			m.err = msg.err
			m.status = "save failed; press q again to quit without saving"
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeAdd:
			return m.updateAdd(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "q":
		return m, m.quit()
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, max(len(m.view)-1, 0))
	case "/":
		m.mode = modeSearch
		cmd := m.search.Focus()
		return m, cmd
	case "esc":
		m.search.SetValue("")
		m.refresh()
	case "s":
		field := m.nextSort
		m.store.Sort(m.ctx, field)
		m.nextSort = toggleSort(field)
		m.status = "sorted by " + field.String()
		m.refresh()
	case "a":
		m.mode = modeAdd
		m.form = newAddForm()
		return m, textinput.Blink
	case "d":
		if c := m.selected(); c != nil && m.store.Remove(m.ctx, c) {
			m.status = "deleted " + c.Name
			m.refresh()
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		c, ok := m.form.contact()
		if !ok {
			return m, nil
		}
		if err := m.store.Add(m.ctx, c); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.status = "added " + c.Name
		m.refresh()
		return m, nil
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// quit saves the directory before exiting. After a failed save a second
// request quits without saving.
func (m Model) quit() tea.Cmd {
	if m.saveFails > 0 {
		return tea.Quit
	}
	store, ctx, logger := m.store, m.ctx, m.logger
	return func() tea.Msg {
		err := store.Save(ctx)
		if err != nil {
			logger.WarnContext(ctx, "save on quit failed", slog.Any("error", err))
		}
		return saveResultMsg{err: err}
	}
}

// refresh rebuilds the filtered view from the store and keeps the cursor in
// range.
func (m *Model) refresh() {
	m.view = contact.Filter(m.store.Contacts(), m.store.Search(m.search.Value()))
	if m.cursor >= len(m.view) {
		m.cursor = max(len(m.view)-1, 0)
	}
}

func (m Model) selected() *contact.Contact {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return nil
	}
	return m.view[m.cursor]
}

func toggleSort(f contact.SortField) contact.SortField {
	if f == contact.SortByName {
		return contact.SortByPhone
	}
	return contact.SortByName
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Phonebook"))
	b.WriteString(StatusBarStyle.Render(fmt.Sprintf("%d of %d contacts", len(m.view), m.store.Len())))
	b.WriteString("\n\n")

	searchStyle := SearchBoxStyle
	if m.mode == modeSearch {
		searchStyle = SearchActiveStyle
	}
	b.WriteString(searchStyle.Render(m.search.View()) + "\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.form.view() + "\n")
		return b.String()
	}

	if len(m.view) == 0 {
		b.WriteString(EmptyStyle.Render("no contacts") + "\n")
	}
	for i, c := range m.view {
		if i == m.cursor {
			b.WriteString(SelectedRowStyle.Render(c.String()) + "\n")
			continue
		}
		b.WriteString(RowStyle.Render(c.String()) + "\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString(StatusBarStyle.Render(m.status) + "\n")
	}
	b.WriteString(HelpStyle.Render("/ search • a add • d delete • s sort by " + m.nextSort.String() + " • q save & quit"))

	return b.String()
}
