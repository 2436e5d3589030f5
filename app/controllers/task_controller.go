package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tasklist-go/app/models"
	"tasklist-go/app/services"
	"tasklist-go/app/views"

	"github.com/gorilla/mux"
)

// TaskController handles HTTP requests for the task list page.
type TaskController struct {
	Service *services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{Service: service}
}

// Index handles GET /.
func (c *TaskController) Index(w http.ResponseWriter, r *http.Request) {
	page := views.Build(c.Service.Snapshot())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.Render(w, page); err != nil {
		log.Printf("render failed: %v", err)
	}
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	c.Service.Add(r.PostFormValue("text"))
	backToIndex(w, r)
}

// ToggleTask handles POST /tasks/{taskID}/toggle.
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	c.Service.Toggle(mux.Vars(r)["taskID"])
	backToIndex(w, r)
}

// EditTask handles POST /tasks/{taskID}/edit.
func (c *TaskController) EditTask(w http.ResponseWriter, r *http.Request) {
	c.Service.BeginEdit(mux.Vars(r)["taskID"])
	backToIndex(w, r)
}

// DeleteTask handles POST /tasks/{taskID}/delete.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	c.Service.Delete(mux.Vars(r)["taskID"])
	backToIndex(w, r)
}

// SaveEdit handles POST /edit.
func (c *TaskController) SaveEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if _, ok := r.PostForm["name"]; ok {
		c.Service.SetEditName(r.PostFormValue("name"))
	}
	c.Service.SaveEdit()
	backToIndex(w, r)
}

// CancelEdit handles POST /edit/cancel.
func (c *TaskController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	c.Service.CancelEdit()
	backToIndex(w, r)
}

// SetFilter handles POST /filter.
func (c *TaskController) SetFilter(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilter(r.PostFormValue("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.Service.SetFilter(filter)
	backToIndex(w, r)
}

// ToggleSort handles POST /sort.
func (c *TaskController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	c.Service.ToggleSort()
	backToIndex(w, r)
}

// SelectUser handles POST /user. An empty value shows all users.
func (c *TaskController) SelectUser(w http.ResponseWriter, r *http.Request) {
	value := strings.TrimSpace(r.PostFormValue("user"))
	if value == "" {
		c.Service.ClearUserSelection()
		backToIndex(w, r)
		return
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	c.Service.SelectUser(id)
	backToIndex(w, r)
}

// GetTasks handles GET /api/tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.Service.Visible())
}

// GetUsers handles GET /api/users.
func (c *TaskController) GetUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.Service.Snapshot().Users)
}

func backToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
