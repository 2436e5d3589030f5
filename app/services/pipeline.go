package services

import (
	"cmp"
	"slices"

	"github.com/samber/mo"

	"tasklist-go/app/models"
)

// Visible derives the displayed tasks: status filter, then user selection,
// then an optional stable sort by user id. The input is left untouched.
func Visible(tasks []models.Task, filter models.Filter, user mo.Option[int], sortByUser bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.Match(t) {
			continue
		}
		if id, ok := user.Get(); ok && t.UserID != id {
			continue
		}
		out = append(out, t)
	}

	if sortByUser {
		slices.SortStableFunc(out, func(a, b models.Task) int {
			return cmp.Compare(a.UserID, b.UserID)
		})
	}
	return out
}
