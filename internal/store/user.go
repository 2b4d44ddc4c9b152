package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/campuschat/campuschat/internal/kv"
	"github.com/campuschat/campuschat/types"
)

const (
	usersKey   = "users"
	sessionKey = "user"
)

// UserRepository handles persistence for the account catalog and the
// active session record. The whole catalog is stored as one JSON blob
// under "users"; the session is a single User record under "user".
type UserRepository struct {
	store *kv.Store
	mu    sync.Mutex // serializes catalog read-modify-write
}

func NewUserRepository(store *kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// List returns every credential record in catalog order. An absent
// catalog reads as empty.
func (r *UserRepository) List(ctx context.Context) ([]types.Credential, error) {
	return r.load(ctx)
}

// FindByEmail returns the credential record whose email matches exactly,
// or ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (types.Credential, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return types.Credential{}, err
	}
	for _, cred := range creds {
		if cred.Email == email {
			return cred, nil
		}
	}
	return types.Credential{}, ErrNotFound
}

// Create appends a credential record to the catalog and writes the whole
// catalog back.
func (r *UserRepository) Create(ctx context.Context, cred types.Credential) (types.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	creds, err := r.load(ctx)
	if err != nil {
		return types.Credential{}, err
	}
	creds = append(creds, cred)
	if err := r.save(ctx, creds); err != nil {
		return types.Credential{}, err
	}
	return cred, nil
}

// InitCatalog writes creds as the full catalog only if no catalog exists
// yet. It reports whether the write happened.
func (r *UserRepository) InitCatalog(ctx context.Context, creds []types.Credential) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.store.Get(ctx, usersKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return false, unavailable(err)
	}
	if err := r.save(ctx, creds); err != nil {
		return false, err
	}
	return true, nil
}

// Session returns the persisted session record, or ErrNotFound when no
// session is stored. Date fields revive through the JSON round-trip.
func (r *UserRepository) Session(ctx context.Context) (types.User, error) {
	raw, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, unavailable(err)
	}
	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return types.User{}, unavailable(err)
	}
	return user, nil
}

// SaveSession persists user as the active session, overwriting any
// previous session record.
func (r *UserRepository) SaveSession(ctx context.Context, user types.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return unavailable(err)
	}
	if err := r.store.Set(ctx, sessionKey, string(raw)); err != nil {
		return unavailable(err)
	}
	return nil
}

// ClearSession removes the persisted session record. Clearing an absent
// session is not an error.
func (r *UserRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, sessionKey); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *UserRepository) load(ctx context.Context) ([]types.Credential, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.Credential{}, nil
		}
		return nil, unavailable(err)
	}
	var creds []types.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, unavailable(err)
	}
	return creds, nil
}

func (r *UserRepository) save(ctx context.Context, creds []types.Credential) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return unavailable(err)
	}
	if err := r.store.Set(ctx, usersKey, string(raw)); err != nil {
		return unavailable(err)
	}
	return nil
}
