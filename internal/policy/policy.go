// Package policy holds the role-based access rules. Everything here is a
// pure function over plain data; no state, no I/O.
package policy

import "github.com/campuschat/campuschat/types"

// Visible reports whether a room may be seen and used by the given role.
// A room with no AllowedRoles restriction is visible to everyone;
// otherwise the role must be in the set.
func Visible(chat types.Chat, role types.Role) bool {
	if len(chat.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range chat.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// CanCreateRoom reports whether the given role may create rooms.
func CanCreateRoom(role types.Role) bool {
	switch role {
	case types.RoleAdmin, types.RoleDev, types.RoleTeacher:
		return true
	}
	return false
}
