package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"tasklist-go/app/models"
)

// Sink receives the results of a load.
type Sink interface {
	ReplaceTasks(tasks []models.Task)
	ReplaceUsers(users []models.User)
}

// Loader reads tasks and users from the remote collection endpoints.
type Loader struct {
	client   *http.Client
	tasksURL string
	usersURL string
	timeout  time.Duration
	once     sync.Once
}

// NewLoader creates a Loader. A zero timeout means requests never time out.
func NewLoader(client *http.Client, tasksURL, usersURL string, timeout time.Duration) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		client:   client,
		tasksURL: tasksURL,
		usersURL: usersURL,
		timeout:  timeout,
	}
}

// Load fetches tasks and users concurrently and hands each result to the sink.
// A failed read is logged and leaves that part of the sink as it was.
// Only the first call does anything; it returns once both reads are done.
func (l *Loader) Load(ctx context.Context, sink Sink) {
	l.once.Do(func() {
		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			tasks, err := l.FetchTasks(ctx)
			if err != nil {
				log.Printf("Error fetching data: %v", err)
				return
			}
			sink.ReplaceTasks(tasks)
		}()

		go func() {
			defer wg.Done()
			users, err := l.FetchUsers(ctx)
			if err != nil {
				log.Printf("Error fetching users: %v", err)
				return
			}
			sink.ReplaceUsers(users)
		}()

		wg.Wait()
	})
}

// FetchTasks reads the tasks endpoint and maps every record to a Task.
func (l *Loader) FetchTasks(ctx context.Context) ([]models.Task, error) {
	var records []models.TodoRecord
	if err := l.getJSON(ctx, l.tasksURL, &records); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, fmt.Errorf("failed to load tasks: record %d has no id", i)
		}
		tasks = append(tasks, r.ToTask())
	}
	return tasks, nil
}

// FetchUsers reads the users endpoint.
func (l *Loader) FetchUsers(ctx context.Context) ([]models.User, error) {
	var records []models.UserRecord
	if err := l.getJSON(ctx, l.usersURL, &records); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := make([]models.User, 0, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, fmt.Errorf("failed to load users: record %d has no id", i)
		}
		users = append(users, r.ToUser())
	}
	return users, nil
}

func (l *Loader) getJSON(ctx context.Context, url string, v any) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: invalid payload: %w", url, err)
	}
	return nil
}
