package types

import "time"

// Role is the authorization category assigned to an account. The role set
// is closed; any other value is rejected at the registration boundary.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleDev     Role = "dev"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin, RoleDev}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleDev:
		return true
	}
	return false
}

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user, derived from the
	// creation timestamp and immutable once assigned.
	ID string `json:"id"`

	// Email is the user's email address. It is the deduplication key:
	// no two accounts may share an email.
	Email string `json:"email"`

	// Name is the user's display or full name.
	Name string `json:"name"`

	// Role indicates the user's authorization level within the system.
	Role Role `json:"role"`

	// Avatar is an optional image reference for the user.
	Avatar string `json:"avatar,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastSeen is the timestamp of the user's most recent login.
	LastSeen time.Time `json:"lastSeen"`
}

// Credential is a User together with its plaintext password. Credentials
// live only in the account catalog under the "users" key; the session
// record never carries the password.
type Credential struct {
	User
	Password string `json:"password"`
}
