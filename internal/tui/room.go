package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campuschat/campuschat/types"
)

// roomView is a single room: the message log in a scrollable viewport
// and a composer line below it.
type roomView struct {
	chat  types.Chat
	user  types.User
	vp    viewport.Model
	input textinput.Model
	ready bool
}

func newRoomView(chat types.Chat, user types.User) roomView {
	input := textinput.New()
	input.Placeholder = "type a message"
	input.CharLimit = 500
	input.Focus()

	return roomView{
		chat:  chat,
		user:  user,
		input: input,
	}
}

func (v roomView) init() tea.Cmd {
	return textinput.Blink
}

func (v *roomView) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	// header (2 lines) + composer + help take fixed rows.
	vpHeight := height - 6
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !v.ready {
		v.vp = viewport.New(width, vpHeight)
		v.ready = true
	} else {
		v.vp.Width = width
		v.vp.Height = vpHeight
	}
	v.input.Width = width - 4
	v.vp.SetContent(v.renderLog())
	v.vp.GotoBottom()
}

func (a App) updateRoom(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.err = nil
			a.screen = screenRooms
			return a, a.loadRoomsCmd()
		case "enter":
			text := a.room.input.Value()
			if strings.TrimSpace(text) == "" {
				return a, nil
			}
			a.room.input.Reset()
			return a, a.sendMessageCmd(a.room.chat.ID, text)
		}
	}

	var inputCmd, vpCmd tea.Cmd
	a.room.input, inputCmd = a.room.input.Update(msg)
	a.room.vp, vpCmd = a.room.vp.Update(msg)
	return a, tea.Batch(inputCmd, vpCmd)
}

func (v roomView) view(err error) string {
	var b strings.Builder

	header := v.chat.Name
	if v.chat.IsPrivate {
		header += " " + lockedStyle.Render("(private)")
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	if v.ready {
		b.WriteString(v.vp.View())
	}
	b.WriteString("\n")
	b.WriteString("> " + v.input.View())

	if err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()))
	}
	b.WriteString("\n" + helpStyle.Render("enter send · ↑/↓ scroll · esc back"))

	return b.String()
}

func (v roomView) renderLog() string {
	if len(v.chat.Messages) == 0 {
		return subtleStyle.Render("No messages yet. Say hello!")
	}

	var b strings.Builder
	for _, msg := range v.chat.Messages {
		stamp := msg.Timestamp.Format("15:04")
		sender := senderStyle.Render(msg.UserName)
		if msg.UserID == v.user.ID {
			sender = selectedStyle.Render(msg.UserName + " (you)")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			subtleStyle.Render(stamp),
			sender,
			subtleStyle.Render("("+string(msg.UserRole)+")"),
		))
		b.WriteString(msg.Text + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
