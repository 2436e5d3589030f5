// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"tasklist-go/app/models"
	"tasklist-go/app/services"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Message types
type tasksLoadedMsg struct{ tasks []models.Task }
type usersLoadedMsg struct{ users []models.User }
type loadFailedMsg struct {
	what string
	err  error
}

// Model is the bubbletea model. All task state lives in the service; the
// model only keeps the cursor and the text input.
type Model struct {
	ctx    context.Context
	svc    *services.TaskService
	loader *services.Loader
	cursor int
	mode   mode
	input  textinput.Model
}

// New creates the model. A nil loader skips the initial load.
func New(ctx context.Context, svc *services.TaskService, loader *services.Loader) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 256
	ti.Width = 40

	return &Model{
		ctx:    ctx,
		svc:    svc,
		loader: loader,
		input:  ti,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, svc *services.TaskService, loader *services.Loader) error {
	_, err := tea.NewProgram(New(ctx, svc, loader), tea.WithContext(ctx)).Run()
	return err
}

// Init implements tea.Model. Tasks and users load independently.
func (m *Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.loadTasks(), m.loadUsers())
}

func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.loader.FetchTasks(m.ctx)
		if err != nil {
			return loadFailedMsg{what: "data", err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m *Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.loader.FetchUsers(m.ctx)
		if err != nil {
			return loadFailedMsg{what: "users", err: err}
		}
		return usersLoadedMsg{users: users}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.svc.ReplaceTasks(msg.tasks)
		m.clampCursor()
		return m, nil
	case usersLoadedMsg:
		m.svc.ReplaceUsers(msg.users)
		return m, nil
	case loadFailedMsg:
		log.Printf("Error fetching %s: %v", msg.what, msg.err)
		return m, nil
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		default:
			return m.updateListMode(msg)
		}
	}
	return m, nil
}

func (m *Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.svc.Visible()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "x", " ":
		if task, ok := m.current(visible); ok {
			m.svc.Toggle(task.ID)
		}
	case "d":
		if task, ok := m.current(visible); ok {
			m.svc.Delete(task.ID)
		}
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	case "e":
		task, ok := m.current(visible)
		if !ok {
			return m, nil
		}
		m.svc.BeginEdit(task.ID)
		m.mode = modeEdit
		m.input.SetValue(task.Name)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "f":
		m.svc.SetFilter(m.svc.Snapshot().Filter.Next())
	case "s":
		m.svc.ToggleSort()
	case "u":
		m.cycleUser()
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.leaveInput()
		return m, nil
	case "enter":
		m.svc.Add(m.input.Value())
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.svc.CancelEdit()
		m.leaveInput()
		return m, nil
	case "enter":
		m.svc.SaveEdit()
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.svc.SetEditName(m.input.Value())
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.clampCursor()
}

// cycleUser steps the user selection through All Users and every loaded user.
func (m *Model) cycleUser() {
	st := m.svc.Snapshot()
	next := nextUser(st.Users, st.SelectedUser)
	if id, ok := next.Get(); ok {
		m.svc.SelectUser(id)
	} else {
		m.svc.ClearUserSelection()
	}
}

func nextUser(users []models.User, current mo.Option[int]) mo.Option[int] {
	if len(users) == 0 {
		return mo.None[int]()
	}
	id, ok := current.Get()
	if !ok {
		return mo.Some(users[0].ID)
	}
	for i, u := range users {
		if u.ID == id {
			if i+1 < len(users) {
				return mo.Some(users[i+1].ID)
			}
			return mo.None[int]()
		}
	}
	return mo.None[int]()
}

func (m *Model) current(visible []models.Task) (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.svc.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
