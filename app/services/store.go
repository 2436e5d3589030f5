package services

import "tasklist-go/app/models"

// The functions below never write to the slice they are given. Each one
// returns a new slice, so a snapshot taken before a mutation stays valid.

// AddTask appends a new open task with the given id and name.
func AddTask(tasks []models.Task, id, name string) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, models.Task{ID: id, Name: name, Completed: false})
}

// ToggleTask inverts the completed flag of the task with the given id.
func ToggleTask(tasks []models.Task, id string) []models.Task {
	return mapTasks(tasks, id, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

// RenameTask replaces the name of the task with the given id.
func RenameTask(tasks []models.Task, id, name string) []models.Task {
	return mapTasks(tasks, id, func(t models.Task) models.Task {
		t.Name = name
		return t
	})
}

// DeleteTask drops the task with the given id.
func DeleteTask(tasks []models.Task, id string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func mapTasks(tasks []models.Task, id string, fn func(models.Task) models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t = fn(t)
		}
		out[i] = t
	}
	return out
}

func containsID(tasks []models.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func findTask(tasks []models.Task, id string) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
