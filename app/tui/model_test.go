package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-go/app/models"
	"tasklist-go/app/services"
)

func newTestModel(t *testing.T) (*Model, *services.TaskService) {
	t.Helper()
	svc := services.NewTaskService()
	svc.ReplaceTasks([]models.Task{
		{ID: "1", Name: "A", Completed: false, UserID: 1},
		{ID: "2", Name: "B", Completed: true, UserID: 2},
		{ID: "3", Name: "C", Completed: false, UserID: 1},
	})
	svc.ReplaceUsers([]models.User{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}})
	return New(context.Background(), svc, nil), svc
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestToggleAndDeleteAtCursor(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("j"), keys("x"))
	assert.False(t, svc.Snapshot().Tasks[1].Completed)

	press(m, keys("d"))
	tasks := svc.Snapshot().Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "3", tasks[1].ID)
}

func TestCursorStaysInRange(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("j"), keys("j"), keys("j"), keys("j"))
	assert.Equal(t, 2, m.cursor)

	press(m, keys("d"))
	assert.Equal(t, 1, m.cursor)
	assert.Len(t, svc.Snapshot().Tasks, 2)

	press(m, keys("k"), keys("k"), keys("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestAddMode(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("a"), keys("Buy milk"), tea.KeyMsg{Type: tea.KeyEnter})

	tasks := svc.Snapshot().Tasks
	require.Len(t, tasks, 4)
	assert.Equal(t, "Buy milk", tasks[3].Name)
	assert.False(t, tasks[3].Completed)
	assert.Equal(t, modeList, m.mode)
}

func TestAddModeEscape(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("a"), keys("nope"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Len(t, svc.Snapshot().Tasks, 3)
	assert.Equal(t, modeList, m.mode)
}

func TestEditSave(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("e"))
	require.Equal(t, modeEdit, m.mode)
	session, ok := svc.Snapshot().Edit.Get()
	require.True(t, ok)
	assert.Equal(t, services.EditSession{ID: "1", Name: "A"}, session)

	press(m, keys("2"))
	session, _ = svc.Snapshot().Edit.Get()
	assert.Equal(t, "A2", session.Name)
	assert.Equal(t, "A", svc.Snapshot().Tasks[0].Name)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	st := svc.Snapshot()
	assert.Equal(t, "A2", st.Tasks[0].Name)
	assert.True(t, st.Edit.IsAbsent())
	assert.Equal(t, modeList, m.mode)
}

func TestEditCancel(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("e"), keys("zzz"), tea.KeyMsg{Type: tea.KeyEsc})

	st := svc.Snapshot()
	assert.Equal(t, "A", st.Tasks[0].Name)
	assert.True(t, st.Edit.IsAbsent())
}

func TestFilterSortAndUserKeys(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, keys("f"))
	assert.Equal(t, models.FilterActive, svc.Snapshot().Filter)

	press(m, keys("s"))
	assert.True(t, svc.Snapshot().SortByUser)

	press(m, keys("u"))
	assert.Equal(t, mo.Some(1), svc.Snapshot().SelectedUser)
	press(m, keys("u"))
	assert.Equal(t, mo.Some(2), svc.Snapshot().SelectedUser)
	press(m, keys("u"))
	assert.True(t, svc.Snapshot().SelectedUser.IsAbsent())
}

func TestTogglesFollowVisibleOrder(t *testing.T) {
	m, svc := newTestModel(t)

	// Completed filter leaves only task 2 at the top.
	press(m, keys("f"), keys("f"), keys("x"))

	assert.False(t, svc.Snapshot().Tasks[1].Completed)
	assert.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsTasks(t *testing.T) {
	m, svc := newTestModel(t)
	svc.ReplaceTasks(append(svc.Snapshot().Tasks, models.Task{ID: "4", Name: "D", UserID: 99}))

	out := m.View()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "(User: unknown)")
	assert.Contains(t, out, "All Users")

	press(m, keys("e"))
	assert.Contains(t, m.View(), "New name for A")
}

func TestLoadFailureIsNotShown(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, loadFailedMsg{what: "data", err: errors.New("offline")})

	assert.Len(t, svc.Snapshot().Tasks, 3)
	assert.NotContains(t, m.View(), "offline")
}

func TestInitLoadsTasksAndUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false}]`))
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := services.NewTaskService()
	loader := services.NewLoader(srv.Client(), srv.URL+"/todos", srv.URL+"/users", 0)
	m := New(context.Background(), svc, loader)

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	for _, cmd := range batch {
		press(m, cmd())
	}

	st := svc.Snapshot()
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "delectus aut autem", st.Tasks[0].Name)
	assert.Empty(t, st.Users)
}
