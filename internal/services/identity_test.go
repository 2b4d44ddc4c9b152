package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/campuschat/campuschat/internal/kv"
	"github.com/campuschat/campuschat/internal/store"
	"github.com/campuschat/campuschat/types"
)

func newTestIdentity() (*IdentityService, *store.UserRepository) {
	repo := store.NewUserRepository(kv.NewStore(kv.NewMemoryBackend()))
	return NewIdentityService(repo, log.New(io.Discard)), repo
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	identity, _ := newTestIdentity()

	registered, err := identity.Register(ctx, "amy@school.edu", "pw123", "Amy", types.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.ID == "" {
		t.Fatal("expected generated id")
	}
	if registered.Email != "amy@school.edu" || registered.Role != types.RoleStudent {
		t.Fatalf("unexpected user: %+v", registered)
	}

	loggedIn, err := identity.Login(ctx, "amy@school.edu", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != registered.ID {
		t.Fatalf("login returned id %q, want %q", loggedIn.ID, registered.ID)
	}
	if loggedIn.LastSeen.Before(registered.LastSeen) {
		t.Fatal("expected lastSeen to advance on login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	identity, repo := newTestIdentity()

	if _, err := identity.Register(ctx, "amy@school.edu", "pw123", "Amy", types.RoleStudent); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := identity.Register(ctx, "amy@school.edu", "other", "Impostor", types.RoleTeacher)
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}

	creds, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(creds) != 1 {
		t.Fatalf("catalog size changed on duplicate: %d", len(creds))
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	identity, _ := newTestIdentity()

	_, err := identity.Register(ctx, "x@y.z", "pw", "X", types.Role("wizard"))
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	identity, repo := newTestIdentity()

	registered, err := identity.Register(ctx, "amy@school.edu", "pw123", "Amy", types.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := identity.Login(ctx, "amy@school.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := identity.Login(ctx, "nobody@school.edu", "pw123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	// A failed login must not alter the session left by registration.
	session, err := repo.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if session.ID != registered.ID {
		t.Fatalf("session altered: %+v", session)
	}
}

func TestLogoutAndRestore(t *testing.T) {
	ctx := context.Background()
	identity, _ := newTestIdentity()

	if _, err := identity.RestoreSession(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on fresh store, got %v", err)
	}

	registered, err := identity.Register(ctx, "amy@school.edu", "pw123", "Amy", types.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	restored, err := identity.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != registered.ID {
		t.Fatalf("restored id %q, want %q", restored.ID, registered.ID)
	}
	if !restored.CreatedAt.Equal(registered.CreatedAt) {
		t.Fatal("createdAt not revived from serialized form")
	}

	if err := identity.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	// Logout is idempotent.
	if err := identity.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if _, err := identity.RestoreSession(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestSeedDemoUsers(t *testing.T) {
	ctx := context.Background()
	identity, repo := newTestIdentity()

	if err := identity.SeedDemoUsers(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := identity.SeedDemoUsers(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	creds, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(creds) != 4 {
		t.Fatalf("expected 4 demo accounts, got %d", len(creds))
	}

	user, err := identity.Login(ctx, "dev@demo.com", "password")
	if err != nil {
		t.Fatalf("demo login: %v", err)
	}
	if user.Role != types.RoleDev {
		t.Fatalf("expected dev role, got %s", user.Role)
	}

	// Seeding never overwrites an existing catalog.
	if _, err := identity.Register(ctx, "new@school.edu", "pw", "New", types.RoleStudent); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := identity.SeedDemoUsers(ctx); err != nil {
		t.Fatalf("seed after register: %v", err)
	}
	creds, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(creds) != 5 {
		t.Fatalf("expected 5 accounts, got %d", len(creds))
	}
}
