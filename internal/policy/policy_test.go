package policy

import (
	"testing"

	"github.com/campuschat/campuschat/types"
)

func TestVisible(t *testing.T) {
	open := types.Chat{ID: "open"}
	empty := types.Chat{ID: "empty", AllowedRoles: []types.Role{}}
	devOnly := types.Chat{ID: "dev", AllowedRoles: []types.Role{types.RoleDev, types.RoleAdmin}}

	cases := []struct {
		name string
		chat types.Chat
		role types.Role
		want bool
	}{
		{"no restriction is visible to anyone", open, types.RoleStudent, true},
		{"empty restriction is visible to anyone", empty, types.RoleStudent, true},
		{"restricted room visible to listed role", devOnly, types.RoleDev, true},
		{"restricted room visible to other listed role", devOnly, types.RoleAdmin, true},
		{"restricted room hidden from unlisted role", devOnly, types.RoleStudent, false},
		{"restricted room hidden from teacher", devOnly, types.RoleTeacher, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Visible(tc.chat, tc.role); got != tc.want {
				t.Fatalf("Visible(%s, %s) = %v, want %v", tc.chat.ID, tc.role, got, tc.want)
			}
		})
	}
}

func TestCanCreateRoom(t *testing.T) {
	cases := []struct {
		role types.Role
		want bool
	}{
		{types.RoleAdmin, true},
		{types.RoleDev, true},
		{types.RoleTeacher, true},
		{types.RoleStudent, false},
		{types.Role("ghost"), false},
	}

	for _, tc := range cases {
		if got := CanCreateRoom(tc.role); got != tc.want {
			t.Fatalf("CanCreateRoom(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
