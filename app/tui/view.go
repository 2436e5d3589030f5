package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasklist-go/app/views"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// View implements tea.Model.
func (m *Model) View() string {
	page := views.Build(m.svc.Snapshot())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")

	b.WriteString(renderFilters(page.Filters))
	b.WriteString("  ")
	b.WriteString(renderUser(page.Users))
	if page.SortByUser {
		b.WriteString("  " + activeStyle.Render("[sorted by user]"))
	}
	b.WriteString("\n\n")

	if len(page.Tasks) == 0 {
		b.WriteString(inactiveStyle.Render("  no tasks"))
		b.WriteString("\n")
	}
	for i, item := range page.Tasks {
		b.WriteString(m.renderItem(i, item))
		b.WriteString("\n")
	}

	switch {
	case m.mode == modeAdd:
		b.WriteString("\nWhat needs to be done?\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case page.Edit != nil:
		fmt.Fprintf(&b, "\nNew name for %s\n", page.Edit.Name)
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *Model) renderItem(i int, item views.TaskItem) string {
	cursor := "  "
	if i == m.cursor && m.mode == modeList {
		cursor = cursorStyle.Render("> ")
	}
	check := "[ ]"
	name := item.Name
	if item.Completed {
		check = "[x]"
		name = doneStyle.Render(name)
	}
	return fmt.Sprintf("%s%s %s %s", cursor, check, name, userStyle.Render("(User: "+item.UserLabel+")"))
}

func renderFilters(filters []views.FilterButton) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		if f.Active {
			parts[i] = activeStyle.Render(f.Name)
		} else {
			parts[i] = inactiveStyle.Render(f.Name)
		}
	}
	return strings.Join(parts, " ")
}

func renderUser(options []views.UserOption) string {
	for _, o := range options {
		if o.Selected {
			return userStyle.Render(o.Label)
		}
	}
	return ""
}

func (m *Model) help() string {
	if m.mode != modeList {
		return "enter: save • esc: cancel"
	}
	return "j/k: move • x: toggle • a: add • e: edit • d: delete • f: filter • s: sort • u: user • q: quit"
}
