// Package views turns task list state into a UI tree and renders it.
package views

import (
	"strconv"

	"tasklist-go/app/models"
	"tasklist-go/app/services"
)

// NoUser is shown in place of a user name that is not among the loaded users.
const NoUser = "unknown"

// Page is everything a surface needs to draw the task list.
type Page struct {
	Filters    []FilterButton
	Users      []UserOption
	SortByUser bool
	Tasks      []TaskItem
	Edit       *EditForm
}

// FilterButton is one entry of the status filter selector.
type FilterButton struct {
	Name   string
	Active bool
}

// UserOption is one entry of the user dropdown. The "All Users" entry has an empty Value.
type UserOption struct {
	Value    string
	Label    string
	Selected bool
}

// TaskItem is one row of the task list.
type TaskItem struct {
	ID        string
	Name      string
	Completed bool
	UserLabel string
}

// EditForm is the rename form shown while an edit session is open.
type EditForm struct {
	ID   string
	Name string
}

// Build derives the page from a state snapshot.
func Build(st services.State) Page {
	page := Page{SortByUser: st.SortByUser}

	for _, f := range models.Filters() {
		page.Filters = append(page.Filters, FilterButton{Name: f.String(), Active: f == st.Filter})
	}

	selected, hasSelection := st.SelectedUser.Get()
	page.Users = append(page.Users, UserOption{Value: "", Label: "All Users", Selected: !hasSelection})
	for _, u := range st.Users {
		page.Users = append(page.Users, UserOption{
			Value:    strconv.Itoa(u.ID),
			Label:    u.Name,
			Selected: hasSelection && u.ID == selected,
		})
	}

	for _, t := range services.Visible(st.Tasks, st.Filter, st.SelectedUser, st.SortByUser) {
		page.Tasks = append(page.Tasks, TaskItem{
			ID:        t.ID,
			Name:      t.Name,
			Completed: t.Completed,
			UserLabel: userLabel(st.Users, t.UserID),
		})
	}

	if session, ok := st.Edit.Get(); ok {
		page.Edit = &EditForm{ID: session.ID, Name: session.Name}
	}
	return page
}

func userLabel(users []models.User, id int) string {
	user, ok := models.LookupUser(users, id).Get()
	if !ok {
		return NoUser
	}
	return user.Name
}
