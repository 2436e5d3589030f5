package models

import "github.com/samber/mo"

// User owns tasks. Users are loaded once and never changed locally.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserRecord is a user as served by the remote users endpoint.
type UserRecord struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// ToUser maps a remote record onto the local user shape.
func (r UserRecord) ToUser() User {
	return User{ID: *r.ID, Name: r.Name}
}

// LookupUser finds the user with the given id.
func LookupUser(users []User, id int) mo.Option[User] {
	for _, u := range users {
		if u.ID == id {
			return mo.Some(u)
		}
	}
	return mo.None[User]()
}
