package services

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"tasklist-go/app/models"
)

// State is an immutable view of everything the task list shows.
// Slices in a State are never written to after it is handed out.
type State struct {
	Tasks        []models.Task
	Users        []models.User
	Filter       models.Filter
	SelectedUser mo.Option[int]
	SortByUser   bool
	Edit         mo.Option[EditSession]
}

// TaskService owns the task list state. Every change goes through one of its
// methods and replaces the affected part of the state as a whole.
type TaskService struct {
	mu    sync.Mutex
	state State
	newID func() string
}

// NewTaskService creates a new instance of TaskService with an empty store.
func NewTaskService() *TaskService {
	return &TaskService{
		state: State{
			Filter:       models.FilterAll,
			SelectedUser: mo.None[int](),
			Edit:         mo.None[EditSession](),
		},
		newID: newTaskID,
	}
}

// SetIDGenerator replaces the id generator (for testing).
func (s *TaskService) SetIDGenerator(fn func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newID = fn
}

// Snapshot returns the current state.
func (s *TaskService) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Visible runs the view filter pipeline against the current state.
func (s *TaskService) Visible() []models.Task {
	st := s.Snapshot()
	return Visible(st.Tasks, st.Filter, st.SelectedUser, st.SortByUser)
}

// ReplaceTasks installs a freshly loaded task list.
func (s *TaskService) ReplaceTasks(tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = slices.Clone(tasks)
}

// ReplaceUsers installs a freshly loaded user list.
func (s *TaskService) ReplaceUsers(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = slices.Clone(users)
}

// Add appends a new open task and returns its id.
func (s *TaskService) Add(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for containsID(s.state.Tasks, id) {
		id = s.newID()
	}
	s.state.Tasks = AddTask(s.state.Tasks, id, name)
	return id
}

// Toggle flips the completed flag of a task. Unknown ids are ignored.
func (s *TaskService) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = ToggleTask(s.state.Tasks, id)
}

// Rename sets the name of a task and ends any edit session.
func (s *TaskService) Rename(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = RenameTask(s.state.Tasks, id, name)
	s.state.Edit = mo.None[EditSession]()
}

// Delete removes a task. Unknown ids are ignored.
func (s *TaskService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = DeleteTask(s.state.Tasks, id)
}

// SetFilter selects the status filter.
func (s *TaskService) SetFilter(f models.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filter = f
}

// SelectUser restricts the view to one user's tasks.
func (s *TaskService) SelectUser(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedUser = mo.Some(id)
}

// ClearUserSelection shows tasks of all users.
func (s *TaskService) ClearUserSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedUser = mo.None[int]()
}

// ToggleSort switches ordering by user id on or off.
func (s *TaskService) ToggleSort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SortByUser = !s.state.SortByUser
}

func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
