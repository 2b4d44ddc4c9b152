package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campuschat/campuschat/types"
)

const (
	createFieldName = iota
	createFieldDescription
	createFieldPrivate
	createFieldRoles
	createFieldCount
)

// createForm is the new-room screen: name, optional description, a
// private flag, and an optional role restriction. Leaving every role
// unchecked makes the room visible to all roles.
type createForm struct {
	inputs   []textinput.Model
	focus    int
	private  bool
	roleIdx  int
	selected map[types.Role]bool
}

func newCreateForm() createForm {
	name := textinput.New()
	name.Placeholder = "room name"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.CharLimit = 128
	description.Width = 48

	return createForm{
		inputs:   []textinput.Model{name, description},
		selected: make(map[types.Role]bool),
	}
}

func (f createForm) init() tea.Cmd {
	return textinput.Blink
}

func (f *createForm) setFocus(i int) tea.Cmd {
	f.focus = i
	var cmd tea.Cmd
	for n := range f.inputs {
		if n == i {
			cmd = f.inputs[n].Focus()
		} else {
			f.inputs[n].Blur()
		}
	}
	return cmd
}

func (f *createForm) allowedRoles() []types.Role {
	var roles []types.Role
	for _, role := range types.Roles {
		if f.selected[role] {
			roles = append(roles, role)
		}
	}
	return roles
}

func (a App) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.err = nil
			a.screen = screenRooms
			return a, nil
		case "tab", "down":
			return a, a.create.setFocus((a.create.focus + 1) % createFieldCount)
		case "shift+tab", "up":
			return a, a.create.setFocus((a.create.focus - 1 + createFieldCount) % createFieldCount)
		case "left":
			if a.create.focus == createFieldRoles {
				a.create.roleIdx = (a.create.roleIdx - 1 + len(types.Roles)) % len(types.Roles)
				return a, nil
			}
		case "right":
			if a.create.focus == createFieldRoles {
				a.create.roleIdx = (a.create.roleIdx + 1) % len(types.Roles)
				return a, nil
			}
		case " ":
			switch a.create.focus {
			case createFieldPrivate:
				a.create.private = !a.create.private
				return a, nil
			case createFieldRoles:
				role := types.Roles[a.create.roleIdx]
				a.create.selected[role] = !a.create.selected[role]
				return a, nil
			}
		case "enter":
			return a, a.submitCreateCmd()
		}
	}

	var cmd tea.Cmd
	if a.create.focus < len(a.create.inputs) {
		a.create.inputs[a.create.focus], cmd = a.create.inputs[a.create.focus].Update(msg)
	}
	return a, cmd
}

func (a App) submitCreateCmd() tea.Cmd {
	name := a.create.inputs[createFieldName].Value()
	description := strings.TrimSpace(a.create.inputs[createFieldDescription].Value())
	private := a.create.private
	roles := a.create.allowedRoles()
	creator := a.user

	return func() tea.Msg {
		chat, err := a.rooms.CreateRoom(a.ctx, name, description, private, roles, creator)
		if err != nil {
			return errMsg{err}
		}
		return roomCreatedMsg{chat}
	}
}

func (f createForm) view(err error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New Room"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Name") + "\n" + f.inputs[createFieldName].View() + "\n\n")
	b.WriteString(labelStyle.Render("Description") + "\n" + f.inputs[createFieldDescription].View() + "\n\n")

	private := "[ ] private"
	if f.private {
		private = "[x] private"
	}
	if f.focus == createFieldPrivate {
		private = selectedStyle.Render(private)
	}
	b.WriteString(private + "\n\n")

	b.WriteString(labelStyle.Render("Allowed roles") + " " + subtleStyle.Render("(none selected = everyone)") + "\n")
	b.WriteString(f.roleRow() + "\n")

	if err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()))
	}
	b.WriteString("\n" + helpStyle.Render("enter create · tab next field · space toggle · esc cancel"))

	return b.String()
}

func (f createForm) roleRow() string {
	parts := make([]string, len(types.Roles))
	for i, role := range types.Roles {
		mark := "[ ]"
		if f.selected[role] {
			mark = "[x]"
		}
		label := mark + " " + string(role)
		if f.focus == createFieldRoles && i == f.roleIdx {
			label = selectedStyle.Render(label)
		} else if f.selected[role] {
			label = lockedStyle.Render(label)
		} else {
			label = subtleStyle.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, "  ")
}
