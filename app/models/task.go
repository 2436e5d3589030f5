package models

import "strconv"

// Task represents a task owned by a user.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// TodoRecord is a task as served by the remote tasks endpoint.
// ID is a pointer so that a record without one can be told apart from id 0.
type TodoRecord struct {
	ID        *int   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// ToTask maps a remote record onto the local task shape.
func (r TodoRecord) ToTask() Task {
	return Task{
		ID:        strconv.Itoa(*r.ID),
		Name:      r.Title,
		Completed: r.Completed,
		UserID:    r.UserID,
	}
}
