package services

import "github.com/samber/mo"

// EditSession is the working copy of the task being renamed.
// Only the id and the name are carried.
type EditSession struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BeginEdit opens an edit session on a task, replacing any open session.
// It does nothing if the task does not exist.
func (s *TaskService) BeginEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := findTask(s.state.Tasks, id)
	if !ok {
		return
	}
	s.state.Edit = mo.Some(EditSession{ID: task.ID, Name: task.Name})
}

// SetEditName changes the name held by the open session. The store is not touched.
func (s *TaskService) SetEditName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.state.Edit.Get()
	if !ok {
		return
	}
	session.Name = name
	s.state.Edit = mo.Some(session)
}

// SaveEdit writes the session name onto the task and closes the session.
func (s *TaskService) SaveEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.state.Edit.Get()
	if !ok {
		return
	}
	s.state.Tasks = RenameTask(s.state.Tasks, session.ID, session.Name)
	s.state.Edit = mo.None[EditSession]()
}

// CancelEdit closes the session without saving.
func (s *TaskService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Edit = mo.None[EditSession]()
}
