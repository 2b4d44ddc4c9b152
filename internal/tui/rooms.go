package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/campuschat/campuschat/internal/policy"
	"github.com/campuschat/campuschat/types"
)

// roomList is the room directory screen: the rooms visible to the
// session user's role, in catalog order.
type roomList struct {
	chats     []types.Chat
	cursor    int
	canCreate bool
}

func newRoomList(chats []types.Chat, user types.User) roomList {
	return roomList{
		chats:     chats,
		canCreate: policy.CanCreateRoom(user.Role),
	}
}

func (a App) updateRooms(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "up", "k":
		if a.roomList.cursor > 0 {
			a.roomList.cursor--
		}
	case "down", "j":
		if a.roomList.cursor < len(a.roomList.chats)-1 {
			a.roomList.cursor++
		}
	case "enter":
		if len(a.roomList.chats) > 0 {
			return a, a.openRoomCmd(a.roomList.chats[a.roomList.cursor].ID)
		}
	case "n":
		if a.roomList.canCreate {
			a.create = newCreateForm()
			a.err = nil
			a.screen = screenCreate
			return a, a.create.init()
		}
	case "r":
		return a, a.loadRoomsCmd()
	case "ctrl+l":
		return a, a.logoutCmd()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (l roomList) view(user types.User, err error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chat Rooms"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Signed in as %s", user.Name)))
	b.WriteString(" " + roleBadgeStyle.Render(string(user.Role)))
	b.WriteString("\n\n")

	if len(l.chats) == 0 {
		b.WriteString(subtleStyle.Render("No rooms available."))
	}

	for i, chat := range l.chats {
		line := chat.Name
		if chat.IsPrivate {
			line += " " + lockedStyle.Render("(private)")
		}
		if i == l.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")

		detail := chat.Description
		if chat.LastMessage != nil {
			detail = fmt.Sprintf("%s: %s", chat.LastMessage.UserName, chat.LastMessage.Text)
		}
		if detail != "" {
			b.WriteString("    " + subtleStyle.Render(truncate(detail, 60)) + "\n")
		}
	}

	if err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()))
	}

	help := "enter open · r refresh · ctrl+l logout · q quit"
	if l.canCreate {
		help = "enter open · n new room · r refresh · ctrl+l logout · q quit"
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
