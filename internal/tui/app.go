// Package tui is the interactive frontend: an auth screen, a
// role-filtered room list, and a room view with a message composer. It
// follows the Elm architecture; one App model owns the active screen and
// the session user, and every service call runs as a tea.Cmd.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/campuschat/campuschat/internal/services"
	"github.com/campuschat/campuschat/types"
)

type screen int

const (
	screenAuth screen = iota
	screenRooms
	screenRoom
	screenCreate
)

// App is the root bubbletea model.
type App struct {
	ctx      context.Context
	identity *services.IdentityService
	rooms    *services.RoomService

	screen screen
	user   types.User
	err    error

	width  int
	height int

	auth     authForm
	roomList roomList
	room     roomView
	create   createForm
}

// New constructs the root model. The session, if one was persisted, is
// restored from Init.
func New(ctx context.Context, identity *services.IdentityService, rooms *services.RoomService) App {
	return App{
		ctx:      ctx,
		identity: identity,
		rooms:    rooms,
		screen:   screenAuth,
		auth:     newAuthForm(),
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, identity *services.IdentityService, rooms *services.RoomService) error {
	_, err := tea.NewProgram(New(ctx, identity, rooms), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.restoreSessionCmd(), a.auth.init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.room.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case errMsg:
		a.err = msg.err
		return a, nil

	case sessionRestoredMsg:
		a.user = msg.user
		a.screen = screenRooms
		return a, tea.Batch(a.seedRoomsCmd(), a.loadRoomsCmd())

	case authedMsg:
		a.user = msg.user
		a.err = nil
		a.screen = screenRooms
		return a, tea.Batch(a.seedRoomsCmd(), a.loadRoomsCmd())

	case roomsSeededMsg:
		return a, a.loadRoomsCmd()

	case roomsLoadedMsg:
		a.roomList = newRoomList(msg.chats, a.user)
		return a, nil

	case roomOpenedMsg:
		a.room = newRoomView(msg.chat, a.user)
		a.room.resize(a.width, a.height)
		a.screen = screenRoom
		return a, a.room.init()

	case messageSentMsg:
		// Re-read the room so the view reflects the persisted log.
		return a, a.openRoomCmd(a.room.chat.ID)

	case roomCreatedMsg:
		a.err = nil
		a.screen = screenRooms
		return a, a.loadRoomsCmd()

	case loggedOutMsg:
		a.user = types.User{}
		a.err = nil
		a.auth = newAuthForm()
		a.screen = screenAuth
		return a, a.auth.init()
	}

	switch a.screen {
	case screenAuth:
		return a.updateAuth(msg)
	case screenRooms:
		return a.updateRooms(msg)
	case screenRoom:
		return a.updateRoom(msg)
	case screenCreate:
		return a.updateCreate(msg)
	}
	return a, nil
}

func (a App) View() string {
	switch a.screen {
	case screenAuth:
		return a.auth.view(a.err)
	case screenRooms:
		return a.roomList.view(a.user, a.err)
	case screenRoom:
		return a.room.view(a.err)
	case screenCreate:
		return a.create.view(a.err)
	}
	return ""
}

// --- messages ---

type errMsg struct{ err error }

type sessionRestoredMsg struct{ user types.User }

type authedMsg struct{ user types.User }

type roomsSeededMsg struct{}

type roomsLoadedMsg struct{ chats []types.Chat }

type roomOpenedMsg struct{ chat types.Chat }

type messageSentMsg struct{}

type roomCreatedMsg struct{ chat types.Chat }

type loggedOutMsg struct{}

// --- commands ---

func (a App) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := a.identity.RestoreSession(a.ctx)
		if err != nil {
			if errors.Is(err, services.ErrNoSession) {
				return nil
			}
			return errMsg{err}
		}
		return sessionRestoredMsg{user}
	}
}

func (a App) seedRoomsCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.rooms.EnsureDefaultRooms(a.ctx); err != nil {
			return errMsg{err}
		}
		return roomsSeededMsg{}
	}
}

func (a App) loadRoomsCmd() tea.Cmd {
	role := a.user.Role
	return func() tea.Msg {
		chats, err := a.rooms.ListVisibleRooms(a.ctx, role)
		if err != nil {
			return errMsg{err}
		}
		return roomsLoadedMsg{chats}
	}
}

func (a App) openRoomCmd(chatID string) tea.Cmd {
	user := a.user
	return func() tea.Msg {
		if _, err := a.rooms.JoinRoom(a.ctx, chatID, user); err != nil {
			return errMsg{err}
		}
		chat, err := a.rooms.GetRoom(a.ctx, chatID, user.Role)
		if err != nil {
			return errMsg{err}
		}
		return roomOpenedMsg{chat}
	}
}

func (a App) sendMessageCmd(chatID, text string) tea.Cmd {
	user := a.user
	return func() tea.Msg {
		if _, err := a.rooms.SendMessage(a.ctx, chatID, user, text); err != nil {
			return errMsg{err}
		}
		return messageSentMsg{}
	}
}

func (a App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.identity.Logout(a.ctx); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}
