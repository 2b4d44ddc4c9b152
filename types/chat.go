package types

import "time"

// Message is a single chat message. Messages are immutable once created.
// UserName and UserRole are copies of the sender's identity at send time
// and are not updated if the sender's profile later changes.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserRole  Role      `json:"userRole"`
	Timestamp time.Time `json:"timestamp"`
	ChatID    string    `json:"chatId"`
}

// Chat is a named, optionally role-restricted room holding an ordered,
// append-only message log.
type Chat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Participants is the set of user IDs that joined the room. It does
	// not gate visibility or sending; AllowedRoles does.
	Participants []string `json:"participants"`

	// Messages is the room's log, ordered by send time.
	Messages []Message `json:"messages"`

	CreatedAt time.Time `json:"createdAt"`

	// LastMessage mirrors the tail of Messages when the log is
	// non-empty, and is nil otherwise.
	LastMessage *Message `json:"lastMessage,omitempty"`

	IsPrivate bool `json:"isPrivate"`

	// AllowedRoles, when non-empty, is the complete set of roles
	// permitted to see the room. Empty or nil means visible to all.
	AllowedRoles []Role `json:"allowedRoles,omitempty"`
}

// HasParticipant reports whether userID is in the participant set.
func (c *Chat) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
