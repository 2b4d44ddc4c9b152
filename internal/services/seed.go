package services

import (
	"time"

	"github.com/campuschat/campuschat/types"
)

// Fixed ids for the seed rooms, so repeated seeding can recognize them.
const (
	GeneralRoomID    = "general"
	StudyGroupRoomID = "study-group"
	DevChatRoomID    = "dev-chat"
)

func defaultRooms() []types.Chat {
	now := time.Now()
	return []types.Chat{
		{
			ID:           GeneralRoomID,
			Name:         "General Discussion",
			Description:  "General chat for all students",
			Participants: []string{},
			Messages:     []types.Message{},
			CreatedAt:    now,
			IsPrivate:    false,
			AllowedRoles: []types.Role{types.RoleStudent, types.RoleTeacher, types.RoleAdmin, types.RoleDev},
		},
		{
			ID:           StudyGroupRoomID,
			Name:         "Study Group",
			Description:  "Collaborative study discussions",
			Participants: []string{},
			Messages:     []types.Message{},
			CreatedAt:    now,
			IsPrivate:    false,
			AllowedRoles: []types.Role{types.RoleStudent, types.RoleTeacher, types.RoleAdmin, types.RoleDev},
		},
		{
			ID:           DevChatRoomID,
			Name:         "Dev Chat",
			Description:  "Special chat for developers only",
			Participants: []string{},
			Messages:     []types.Message{},
			CreatedAt:    now,
			IsPrivate:    true,
			AllowedRoles: []types.Role{types.RoleDev, types.RoleAdmin},
		},
	}
}

// demoUsers returns the accounts installed on first run so the app is
// usable without registering. All demo passwords are "password".
func demoUsers() []types.Credential {
	now := time.Now()
	return []types.Credential{
		{
			User: types.User{
				ID:        "demo-student",
				Email:     "student@demo.com",
				Name:      "Alex Student",
				Role:      types.RoleStudent,
				CreatedAt: now,
				LastSeen:  now,
			},
			Password: "password",
		},
		{
			User: types.User{
				ID:        "demo-teacher",
				Email:     "teacher@demo.com",
				Name:      "Sarah Teacher",
				Role:      types.RoleTeacher,
				CreatedAt: now,
				LastSeen:  now,
			},
			Password: "password",
		},
		{
			User: types.User{
				ID:        "demo-admin",
				Email:     "admin@demo.com",
				Name:      "Mike Admin",
				Role:      types.RoleAdmin,
				CreatedAt: now,
				LastSeen:  now,
			},
			Password: "password",
		},
		{
			User: types.User{
				ID:        "demo-dev",
				Email:     "dev@demo.com",
				Name:      "Jordan Developer",
				Role:      types.RoleDev,
				CreatedAt: now,
				LastSeen:  now,
			},
			Password: "password",
		},
	}
}
