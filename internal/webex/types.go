package webex

// Webex resource types as returned by the REST API.
// Optional fields are pointers so that absence can be distinguished from
// the zero value. Timestamps are kept as the strings the API returned.

// Room is a Webex space (direct 1:1 or group conversation).
type Room struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"` // "direct" or "group"
	IsLocked     bool    `json:"isLocked,omitempty"`
	TeamID       *string `json:"teamId,omitempty"`
	CreatorID    *string `json:"creatorId,omitempty"`
	Created      string  `json:"created"`
	LastActivity *string `json:"lastActivity,omitempty"`
}

// Message is a single message posted to a room.
type Message struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	RoomType    string  `json:"roomType,omitempty"`
	ToPersonID  *string `json:"toPersonId,omitempty"`
	Text        string  `json:"text"`
	Markdown    *string `json:"markdown,omitempty"`
	PersonID    string  `json:"personId"`
	PersonEmail string  `json:"personEmail"`
	Created     string  `json:"created"`
}

// Membership associates a person with a room.
type Membership struct {
	ID                string `json:"id"`
	RoomID            string `json:"roomId"`
	PersonID          string `json:"personId"`
	PersonEmail       string `json:"personEmail"`
	PersonDisplayName string `json:"personDisplayName"`
	IsModerator       bool   `json:"isModerator"`
	Created           string `json:"created"`
}

// Person is a Webex user or bot account.
type Person struct {
	ID          string   `json:"id"`
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
	FirstName   *string  `json:"firstName,omitempty"`
	LastName    *string  `json:"lastName,omitempty"`
	OrgID       string   `json:"orgId"`
	Type        string   `json:"type,omitempty"` // "person" or "bot"
	Created     string   `json:"created"`
}

// MessageRequest is the payload for POST /messages.
type MessageRequest struct {
	RoomID     string `json:"roomId"`
	ToPersonID string `json:"toPersonId,omitempty"`
	Text       string `json:"text,omitempty"`
	Markdown   string `json:"markdown,omitempty"`
}

// RoomRequest is the payload for POST /rooms.
type RoomRequest struct {
	Title  string `json:"title"`
	TeamID string `json:"teamId,omitempty"`
}

// MembershipRequest is the payload for POST /memberships.
type MembershipRequest struct {
	RoomID      string `json:"roomId"`
	PersonEmail string `json:"personEmail"`
	IsModerator bool   `json:"isModerator"`
}
