package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"github.com/campuschat/campuschat/internal/policy"
	"github.com/campuschat/campuschat/internal/store"
	"github.com/campuschat/campuschat/types"
)

// ChatRepository defines persistence operations for the room catalog.
type ChatRepository interface {
	List(ctx context.Context) ([]types.Chat, error)
	Get(ctx context.Context, chatID string) (types.Chat, error)
	Insert(ctx context.Context, chat types.Chat) error
	InsertMissing(ctx context.Context, defaults []types.Chat) (int, error)
	AppendMessage(ctx context.Context, msg types.Message) error
	AddParticipant(ctx context.Context, chatID, userID string) (bool, error)
	RemoveParticipant(ctx context.Context, chatID, userID string) (bool, error)
}

// RoomService encapsulates the room catalog, message log, and per-role
// visibility. The acting user is always passed in explicitly; the
// service keeps no notion of "the" current user.
type RoomService struct {
	repo ChatRepository
	log  *log.Logger
}

func NewRoomService(repo ChatRepository, logger *log.Logger) *RoomService {
	if logger == nil {
		logger = log.Default()
	}
	return &RoomService{repo: repo, log: logger}
}

// EnsureDefaultRooms seeds the three default rooms, inserting only the
// ones whose id is absent. Calling it repeatedly is safe and leaves
// exactly one copy of each seed room.
func (s *RoomService) EnsureDefaultRooms(ctx context.Context) error {
	inserted, err := s.repo.InsertMissing(ctx, defaultRooms())
	if err != nil {
		s.log.Error("seed default rooms failed", "err", err)
		return err
	}
	if inserted > 0 {
		s.log.Info("default rooms created", "count", inserted)
	}
	return nil
}

// ListVisibleRooms returns the rooms visible to the given role, in
// catalog (insertion) order.
func (s *RoomService) ListVisibleRooms(ctx context.Context, role types.Role) ([]types.Chat, error) {
	chats, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list rooms failed", "err", err)
		return nil, err
	}
	visible := make([]types.Chat, 0, len(chats))
	for _, chat := range chats {
		if policy.Visible(chat, role) {
			visible = append(visible, chat)
		}
	}
	return visible, nil
}

// GetRoom returns a single room if it exists and is visible to the
// given role; otherwise ErrRoomNotFound.
func (s *RoomService) GetRoom(ctx context.Context, chatID string, role types.Role) (types.Chat, error) {
	chat, err := s.repo.Get(ctx, chatID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Chat{}, ErrRoomNotFound
		}
		s.log.Error("get room failed", "chat_id", chatID, "err", err)
		return types.Chat{}, err
	}
	if !policy.Visible(chat, role) {
		return types.Chat{}, ErrRoomNotFound
	}
	return chat, nil
}

// SendMessage appends a message to the addressed room, stamped with the
// sender's identity at send time. Blank text is rejected before anything
// is written; an unknown chat id fails with ErrRoomNotFound and leaves
// the catalog untouched.
func (s *RoomService) SendMessage(ctx context.Context, chatID string, sender types.User, text string) (types.Message, error) {
	if strings.TrimSpace(text) == "" {
		return types.Message{}, ErrEmptyText
	}

	msg := types.Message{
		ID:        ksuid.New().String(),
		Text:      text,
		UserID:    sender.ID,
		UserName:  sender.Name,
		UserRole:  sender.Role,
		Timestamp: time.Now(),
		ChatID:    chatID,
	}

	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Message{}, ErrRoomNotFound
		}
		s.log.Error("send message failed", "chat_id", chatID, "err", err)
		return types.Message{}, err
	}
	return msg, nil
}

// CreateRoom adds a new room with the creator as sole participant and an
// empty message log.
func (s *RoomService) CreateRoom(ctx context.Context, name, description string, isPrivate bool, allowedRoles []types.Role, creator types.User) (types.Chat, error) {
	if strings.TrimSpace(name) == "" {
		return types.Chat{}, ErrEmptyName
	}

	chat := types.Chat{
		ID:           ksuid.New().String(),
		Name:         name,
		Description:  description,
		Participants: []string{creator.ID},
		Messages:     []types.Message{},
		CreatedAt:    time.Now(),
		IsPrivate:    isPrivate,
		AllowedRoles: allowedRoles,
	}

	if err := s.repo.Insert(ctx, chat); err != nil {
		s.log.Error("create room failed", "name", name, "err", err)
		return types.Chat{}, err
	}
	s.log.Info("room created", "name", name)
	return chat, nil
}

// JoinRoom adds the user to the room's participant set. Joining a room
// the user is already in is a no-op. Returns false, not an error, when
// the room does not exist.
func (s *RoomService) JoinRoom(ctx context.Context, chatID string, user types.User) (bool, error) {
	ok, err := s.repo.AddParticipant(ctx, chatID, user.ID)
	if err != nil {
		s.log.Error("join room failed", "chat_id", chatID, "err", err)
		return false, err
	}
	return ok, nil
}

// LeaveRoom removes the user from the room's participant set. Leaving a
// room the user is not in is a no-op. Returns false, not an error, when
// the room does not exist.
func (s *RoomService) LeaveRoom(ctx context.Context, chatID string, user types.User) (bool, error) {
	ok, err := s.repo.RemoveParticipant(ctx, chatID, user.ID)
	if err != nil {
		s.log.Error("leave room failed", "chat_id", chatID, "err", err)
		return false, err
	}
	return ok, nil
}
