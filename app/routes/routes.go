package routes

import (
	"net/http"
	"tasklist-go/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController) {
	router.HandleFunc("/", taskController.Index).Methods(http.MethodGet)
	router.HandleFunc("/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}/toggle", taskController.ToggleTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}/edit", taskController.EditTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}/delete", taskController.DeleteTask).Methods(http.MethodPost)
	router.HandleFunc("/edit", taskController.SaveEdit).Methods(http.MethodPost)
	router.HandleFunc("/edit/cancel", taskController.CancelEdit).Methods(http.MethodPost)
	router.HandleFunc("/filter", taskController.SetFilter).Methods(http.MethodPost)
	router.HandleFunc("/sort", taskController.ToggleSort).Methods(http.MethodPost)
	router.HandleFunc("/user", taskController.SelectUser).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tasks", taskController.GetTasks).Methods(http.MethodGet)
	api.HandleFunc("/users", taskController.GetUsers).Methods(http.MethodGet)
}
