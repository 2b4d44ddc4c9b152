package services

import "errors"

var (
	// ErrDuplicateAccount is returned when registering an email that
	// already has a credential record.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials is returned when no credential record
	// matches both email and password exactly.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole is returned when registration is attempted with a
	// role outside the closed role set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrNoSession is returned by RestoreSession when no session record
	// is persisted.
	ErrNoSession = errors.New("no active session")

	// ErrRoomNotFound is returned when an operation addresses a chat id
	// that matches no room.
	ErrRoomNotFound = errors.New("room not found")

	// ErrEmptyName is returned when creating a room with a blank name.
	ErrEmptyName = errors.New("room name is empty")

	// ErrEmptyText is returned when sending a message whose text trims
	// to nothing.
	ErrEmptyText = errors.New("message text is empty")
)
