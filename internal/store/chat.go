package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/campuschat/campuschat/internal/kv"
	"github.com/campuschat/campuschat/types"
)

const chatsKey = "chats"

// ChatRepository handles persistence for the room catalog, messages
// included. There is no per-room addressing at the storage layer: every
// mutation reloads the whole catalog under "chats", rewrites it, and
// stores it back. A mutex serializes those read-modify-write cycles
// within one process.
type ChatRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

func NewChatRepository(store *kv.Store) *ChatRepository {
	return &ChatRepository{store: store}
}

// List returns every room in catalog (insertion) order. An absent
// catalog reads as empty.
func (r *ChatRepository) List(ctx context.Context) ([]types.Chat, error) {
	return r.load(ctx)
}

// Get returns the room with the given id, or ErrNotFound.
func (r *ChatRepository) Get(ctx context.Context, chatID string) (types.Chat, error) {
	chats, err := r.load(ctx)
	if err != nil {
		return types.Chat{}, err
	}
	for _, chat := range chats {
		if chat.ID == chatID {
			return chat, nil
		}
	}
	return types.Chat{}, ErrNotFound
}

// Insert appends a room to the catalog and writes the catalog back.
func (r *ChatRepository) Insert(ctx context.Context, chat types.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats, err := r.load(ctx)
	if err != nil {
		return err
	}
	chats = append(chats, chat)
	return r.save(ctx, chats)
}

// InsertMissing appends each room in defaults whose id is not already
// present, writing the catalog back only if at least one was inserted.
// It reports how many rooms were inserted. Safe to call repeatedly.
func (r *ChatRepository) InsertMissing(ctx context.Context, defaults []types.Chat) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, def := range defaults {
		exists := false
		for _, chat := range chats {
			if chat.ID == def.ID {
				exists = true
				break
			}
		}
		if !exists {
			chats = append(chats, def)
			inserted++
		}
	}
	if inserted == 0 {
		return 0, nil
	}
	if err := r.save(ctx, chats); err != nil {
		return 0, err
	}
	return inserted, nil
}

// AppendMessage appends msg to the log of the room it addresses and sets
// the room's LastMessage to it. Returns ErrNotFound, without writing,
// when no room matches msg.ChatID.
func (r *ChatRepository) AppendMessage(ctx context.Context, msg types.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range chats {
		if chats[i].ID == msg.ChatID {
			chats[i].Messages = append(chats[i].Messages, msg)
			last := msg
			chats[i].LastMessage = &last
			return r.save(ctx, chats)
		}
	}
	return ErrNotFound
}

// AddParticipant adds userID to the room's participant set. Returns
// false, not an error, when the room does not exist. Adding an existing
// participant is a no-op.
func (r *ChatRepository) AddParticipant(ctx context.Context, chatID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range chats {
		if chats[i].ID != chatID {
			continue
		}
		if chats[i].HasParticipant(userID) {
			return true, nil
		}
		chats[i].Participants = append(chats[i].Participants, userID)
		if err := r.save(ctx, chats); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// RemoveParticipant removes userID from the room's participant set.
// Returns false, not an error, when the room does not exist. Removing an
// absent participant is a no-op.
func (r *ChatRepository) RemoveParticipant(ctx context.Context, chatID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range chats {
		if chats[i].ID != chatID {
			continue
		}
		kept := chats[i].Participants[:0]
		removed := false
		for _, id := range chats[i].Participants {
			if id == userID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		if !removed {
			return true, nil
		}
		chats[i].Participants = kept
		if err := r.save(ctx, chats); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (r *ChatRepository) load(ctx context.Context) ([]types.Chat, error) {
	raw, err := r.store.Get(ctx, chatsKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.Chat{}, nil
		}
		return nil, unavailable(err)
	}
	var chats []types.Chat
	if err := json.Unmarshal([]byte(raw), &chats); err != nil {
		return nil, unavailable(err)
	}
	return chats, nil
}

func (r *ChatRepository) save(ctx context.Context, chats []types.Chat) error {
	raw, err := json.Marshal(chats)
	if err != nil {
		return unavailable(err)
	}
	if err := r.store.Set(ctx, chatsKey, string(raw)); err != nil {
		return unavailable(err)
	}
	return nil
}
