package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuschat/campuschat/internal/kv"
	"github.com/campuschat/campuschat/types"
)

func newChatRepo() *ChatRepository {
	return NewChatRepository(kv.NewStore(kv.NewMemoryBackend()))
}

func testChat(id, name string) types.Chat {
	return types.Chat{
		ID:           id,
		Name:         name,
		Participants: []string{},
		Messages:     []types.Message{},
		CreatedAt:    time.Now(),
	}
}

func TestChatRepositoryInsertMissing(t *testing.T) {
	ctx := context.Background()
	repo := newChatRepo()

	defaults := []types.Chat{testChat("general", "General"), testChat("dev-chat", "Dev")}

	inserted, err := repo.InsertMissing(ctx, defaults)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}

	inserted, err = repo.InsertMissing(ctx, defaults)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected idempotent seed, got %d inserted", inserted)
	}

	chats, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(chats))
	}
}

func TestChatRepositoryAppendMessage(t *testing.T) {
	ctx := context.Background()
	repo := newChatRepo()

	if err := repo.Insert(ctx, testChat("general", "General")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, testChat("other", "Other")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	msg := types.Message{
		ID:        "m1",
		Text:      "hello",
		UserID:    "u1",
		UserName:  "Alex",
		UserRole:  types.RoleStudent,
		Timestamp: time.Now(),
		ChatID:    "general",
	}
	if err := repo.AppendMessage(ctx, msg); err != nil {
		t.Fatalf("append: %v", err)
	}

	general, err := repo.Get(ctx, "general")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(general.Messages) != 1 || general.Messages[0].Text != "hello" {
		t.Fatalf("unexpected log: %+v", general.Messages)
	}
	if general.LastMessage == nil || general.LastMessage.Text != "hello" {
		t.Fatalf("lastMessage not set: %+v", general.LastMessage)
	}

	other, err := repo.Get(ctx, "other")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if len(other.Messages) != 0 || other.LastMessage != nil {
		t.Fatalf("other room altered: %+v", other)
	}
}

func TestChatRepositoryAppendMessageUnknownRoom(t *testing.T) {
	ctx := context.Background()
	repo := newChatRepo()

	if err := repo.Insert(ctx, testChat("general", "General")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	msg := types.Message{ID: "m1", Text: "hello", ChatID: "nope"}
	if err := repo.AppendMessage(ctx, msg); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	chats, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(chats) != 1 || len(chats[0].Messages) != 0 {
		t.Fatalf("catalog changed by failed append: %+v", chats)
	}
}

func TestChatRepositoryParticipants(t *testing.T) {
	ctx := context.Background()
	repo := newChatRepo()

	if err := repo.Insert(ctx, testChat("general", "General")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ok, err := repo.AddParticipant(ctx, "general", "u1")
	if err != nil || !ok {
		t.Fatalf("add: ok=%v err=%v", ok, err)
	}
	// Adding again is a no-op, not a duplicate.
	ok, err = repo.AddParticipant(ctx, "general", "u1")
	if err != nil || !ok {
		t.Fatalf("re-add: ok=%v err=%v", ok, err)
	}

	chat, err := repo.Get(ctx, "general")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(chat.Participants) != 1 {
		t.Fatalf("expected 1 participant, got %v", chat.Participants)
	}

	ok, err = repo.RemoveParticipant(ctx, "general", "u1")
	if err != nil || !ok {
		t.Fatalf("remove: ok=%v err=%v", ok, err)
	}
	ok, err = repo.RemoveParticipant(ctx, "general", "u1")
	if err != nil || !ok {
		t.Fatalf("re-remove: ok=%v err=%v", ok, err)
	}

	chat, err = repo.Get(ctx, "general")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(chat.Participants) != 0 {
		t.Fatalf("expected empty participants, got %v", chat.Participants)
	}

	// Unknown room reports false, not an error.
	ok, err = repo.AddParticipant(ctx, "nope", "u1")
	if err != nil || ok {
		t.Fatalf("unknown room: ok=%v err=%v", ok, err)
	}
	ok, err = repo.RemoveParticipant(ctx, "nope", "u1")
	if err != nil || ok {
		t.Fatalf("unknown room: ok=%v err=%v", ok, err)
	}
}
