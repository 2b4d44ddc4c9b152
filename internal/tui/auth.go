package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campuschat/campuschat/internal/services"
	"github.com/campuschat/campuschat/types"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

const (
	fieldEmail = iota
	fieldPassword
	fieldName
	fieldRole
)

// authForm is the login/register screen. Login uses email+password;
// register adds a display name and a role picker.
type authForm struct {
	mode    authMode
	inputs  []textinput.Model
	focus   int
	roleIdx int
}

func newAuthForm() authForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64
	password.Width = 32

	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 64
	name.Width = 32

	return authForm{
		mode:   modeLogin,
		inputs: []textinput.Model{email, password, name},
	}
}

func (f authForm) init() tea.Cmd {
	return textinput.Blink
}

func (f *authForm) fieldCount() int {
	if f.mode == modeLogin {
		return 2
	}
	return 4
}

func (f *authForm) setFocus(i int) tea.Cmd {
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

func (f *authForm) toggleMode() tea.Cmd {
	if f.mode == modeLogin {
		f.mode = modeRegister
	} else {
		f.mode = modeLogin
	}
	return f.setFocus(0)
}

func (a App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+r":
			return a, a.auth.toggleMode()
		case "tab", "down":
			return a, a.auth.setFocus((a.auth.focus + 1) % a.auth.fieldCount())
		case "shift+tab", "up":
			return a, a.auth.setFocus((a.auth.focus - 1 + a.auth.fieldCount()) % a.auth.fieldCount())
		case "left":
			if a.auth.mode == modeRegister && a.auth.focus == fieldRole {
				a.auth.roleIdx = (a.auth.roleIdx - 1 + len(types.Roles)) % len(types.Roles)
				return a, nil
			}
		case "right":
			if a.auth.mode == modeRegister && a.auth.focus == fieldRole {
				a.auth.roleIdx = (a.auth.roleIdx + 1) % len(types.Roles)
				return a, nil
			}
		case "enter":
			return a, a.submitAuthCmd()
		}
	}

	var cmd tea.Cmd
	if a.auth.focus < len(a.auth.inputs) {
		a.auth.inputs[a.auth.focus], cmd = a.auth.inputs[a.auth.focus].Update(msg)
	}
	return a, cmd
}

func (a App) submitAuthCmd() tea.Cmd {
	email := strings.TrimSpace(a.auth.inputs[fieldEmail].Value())
	password := a.auth.inputs[fieldPassword].Value()

	if a.auth.mode == modeLogin {
		return func() tea.Msg {
			user, err := a.identity.Login(a.ctx, email, password)
			if err != nil {
				return errMsg{err}
			}
			return authedMsg{user}
		}
	}

	name := strings.TrimSpace(a.auth.inputs[fieldName].Value())
	role := types.Roles[a.auth.roleIdx]
	return func() tea.Msg {
		if email == "" || password == "" || name == "" {
			return errMsg{errors.New("all fields are required")}
		}
		user, err := a.identity.Register(a.ctx, email, password, name, role)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateAccount) {
				return errMsg{errors.New("an account with this email already exists")}
			}
			return errMsg{err}
		}
		return authedMsg{user}
	}
}

func (f authForm) view(err error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CampusChat"))
	b.WriteString("\n")
	if f.mode == modeLogin {
		b.WriteString(subtleStyle.Render("Sign in to continue"))
	} else {
		b.WriteString(subtleStyle.Render("Create an account"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Email") + "\n" + f.inputs[fieldEmail].View() + "\n\n")
	b.WriteString(labelStyle.Render("Password") + "\n" + f.inputs[fieldPassword].View() + "\n")

	if f.mode == modeRegister {
		b.WriteString("\n" + labelStyle.Render("Name") + "\n" + f.inputs[fieldName].View() + "\n\n")
		b.WriteString(labelStyle.Render("Role") + "\n" + f.roleRow())
	}

	if err != nil {
		b.WriteString("\n\n" + errorStyle.Render(err.Error()))
	}

	help := "enter submit · tab next field · ctrl+r switch to register · ctrl+c quit"
	if f.mode == modeRegister {
		help = "enter submit · tab next field · ←/→ pick role · ctrl+r switch to login · ctrl+c quit"
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return b.String()
}

func (f authForm) roleRow() string {
	parts := make([]string, len(types.Roles))
	for i, role := range types.Roles {
		label := fmt.Sprintf(" %s ", role)
		if i == f.roleIdx {
			if f.focus == fieldRole {
				parts[i] = roleBadgeStyle.Render(string(role))
				continue
			}
			parts[i] = selectedStyle.Render(label)
			continue
		}
		parts[i] = subtleStyle.Render(label)
	}
	return strings.Join(parts, " ")
}
