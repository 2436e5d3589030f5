package models

import "fmt"

// Filter selects tasks by completion status.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

var filterNames = map[Filter]string{
	FilterAll:       "All",
	FilterActive:    "Active",
	FilterCompleted: "Completed",
}

var filterPredicates = map[Filter]func(Task) bool{
	FilterAll:       func(Task) bool { return true },
	FilterActive:    func(t Task) bool { return !t.Completed },
	FilterCompleted: func(t Task) bool { return t.Completed },
}

// Filters returns every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// String returns the display name of the filter.
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Match reports whether the task passes the filter.
// Unknown filter values match nothing.
func (f Filter) Match(t Task) bool {
	pred, ok := filterPredicates[f]
	if !ok {
		return false
	}
	return pred(t)
}

// Next returns the filter that follows f in display order, wrapping around.
func (f Filter) Next() Filter {
	all := Filters()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// ParseFilter converts a display name into a Filter.
func ParseFilter(name string) (Filter, error) {
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter: %q", name)
}
