package services

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-go/app/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "1", Name: "A", Completed: false, UserID: 1},
		{ID: "2", Name: "B", Completed: true, UserID: 2},
		{ID: "3", Name: "C", Completed: false, UserID: 1},
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	tasks := sampleTasks()

	assert.Equal(t, tasks, ToggleTask(tasks, "missing"))
	assert.Equal(t, tasks, DeleteTask(tasks, "missing"))
	assert.Equal(t, tasks, RenameTask(tasks, "missing", "whatever"))
}

func TestToggleTwiceRestores(t *testing.T) {
	tasks := sampleTasks()

	once := ToggleTask(tasks, "2")
	assert.False(t, once[1].Completed)
	assert.Equal(t, tasks[0], once[0])
	assert.Equal(t, tasks[2], once[2])

	assert.Equal(t, tasks, ToggleTask(once, "2"))
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	before := slices.Clone(tasks)

	_ = AddTask(tasks, "4", "D")
	_ = ToggleTask(tasks, "1")
	_ = RenameTask(tasks, "1", "A2")
	_ = DeleteTask(tasks, "2")

	assert.Equal(t, before, tasks)
}

func TestAddAppendsOpenTask(t *testing.T) {
	tasks := AddTask(nil, "x", "Buy milk")

	require.Len(t, tasks, 1)
	assert.Equal(t, models.Task{ID: "x", Name: "Buy milk", Completed: false}, tasks[0])
}

func TestAddKeepsOrder(t *testing.T) {
	tasks := AddTask(sampleTasks(), "4", "D")

	require.Len(t, tasks, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(tasks))
}

func TestAddThenDeleteRestores(t *testing.T) {
	tasks := sampleTasks()
	assert.Equal(t, tasks, DeleteTask(AddTask(tasks, "new", "D"), "new"))
}

func TestRenameOnlyChangesName(t *testing.T) {
	tasks := RenameTask(sampleTasks(), "2", "B2")

	assert.Equal(t, models.Task{ID: "2", Name: "B2", Completed: true, UserID: 2}, tasks[1])
}

func TestDeleteKeepsOthersInOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, ids(DeleteTask(sampleTasks(), "2")))
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
