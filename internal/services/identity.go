package services

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"github.com/campuschat/campuschat/internal/store"
	"github.com/campuschat/campuschat/types"
)

// UserRepository defines persistence operations for accounts and the
// session record.
type UserRepository interface {
	List(ctx context.Context) ([]types.Credential, error)
	FindByEmail(ctx context.Context, email string) (types.Credential, error)
	Create(ctx context.Context, cred types.Credential) (types.Credential, error)
	InitCatalog(ctx context.Context, creds []types.Credential) (bool, error)
	Session(ctx context.Context) (types.User, error)
	SaveSession(ctx context.Context, user types.User) error
	ClearSession(ctx context.Context) error
}

// IdentityService encapsulates account creation, authentication and
// session lifecycle. It holds no session state itself: Register, Login
// and RestoreSession return the session User and the caller keeps it.
type IdentityService struct {
	repo UserRepository
	log  *log.Logger
}

func NewIdentityService(repo UserRepository, logger *log.Logger) *IdentityService {
	if logger == nil {
		logger = log.Default()
	}
	return &IdentityService{repo: repo, log: logger}
}

// Register creates an account, persists its credential record, and
// establishes the new user as the active session. The email match for
// duplicate detection is case-sensitive and exact.
func (s *IdentityService) Register(ctx context.Context, email, password, name string, role types.Role) (types.User, error) {
	if !role.Valid() {
		return types.User{}, ErrInvalidRole
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return types.User{}, ErrDuplicateAccount
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.log.Error("register: lookup failed", "email", email, "err", err)
		return types.User{}, err
	}

	now := time.Now()
	cred := types.Credential{
		User: types.User{
			ID:        ksuid.New().String(),
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: now,
			LastSeen:  now,
		},
		Password: password,
	}

	if _, err := s.repo.Create(ctx, cred); err != nil {
		s.log.Error("register: create failed", "email", email, "err", err)
		return types.User{}, err
	}
	if err := s.repo.SaveSession(ctx, cred.User); err != nil {
		s.log.Error("register: save session failed", "email", email, "err", err)
		return types.User{}, err
	}

	s.log.Info("user registered", "name", cred.Name, "role", cred.Role)
	return cred.User, nil
}

// Login authenticates by exact email+password match and establishes the
// user as the active session, overwriting any previous one. LastSeen is
// updated on the session record only, not in the persisted catalog.
func (s *IdentityService) Login(ctx context.Context, email, password string) (types.User, error) {
	cred, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		s.log.Error("login: lookup failed", "email", email, "err", err)
		return types.User{}, err
	}
	if cred.Password != password {
		return types.User{}, ErrInvalidCredentials
	}

	user := cred.User
	user.LastSeen = time.Now()
	if err := s.repo.SaveSession(ctx, user); err != nil {
		s.log.Error("login: save session failed", "email", email, "err", err)
		return types.User{}, err
	}

	s.log.Info("user logged in", "name", user.Name, "role", user.Role)
	return user, nil
}

// Logout clears the persisted session record. Logging out with no
// active session is not an error.
func (s *IdentityService) Logout(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		s.log.Error("logout failed", "err", err)
		return err
	}
	s.log.Info("user logged out")
	return nil
}

// RestoreSession reads the persisted session record, if any, so a
// returning user skips re-authentication. Returns ErrNoSession when no
// record is stored.
func (s *IdentityService) RestoreSession(ctx context.Context) (types.User, error) {
	user, err := s.repo.Session(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrNoSession
		}
		s.log.Error("restore session failed", "err", err)
		return types.User{}, err
	}
	return user, nil
}

// SeedDemoUsers installs the demo accounts the first time the app runs.
// If any account catalog already exists, nothing is written.
func (s *IdentityService) SeedDemoUsers(ctx context.Context) error {
	seeded, err := s.repo.InitCatalog(ctx, demoUsers())
	if err != nil {
		s.log.Error("seed demo users failed", "err", err)
		return err
	}
	if seeded {
		s.log.Info("demo users initialized")
	}
	return nil
}
