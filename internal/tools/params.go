package tools

import "fmt"

// Per-tool argument structs. Field names follow the tool schemas, not the
// Webex API: the schema layer speaks snake_case to the calling agent and the
// handlers translate to API payloads.

type SendMessageParams struct {
	RoomID      string `json:"room_id"`
	Text        string `json:"text"`
	Markdown    string `json:"markdown,omitempty"`
	PersonEmail string `json:"person_email,omitempty"`
}

func (p *SendMessageParams) Validate() error {
	if p.RoomID == "" {
		return fmt.Errorf("room_id is required")
	}
	if p.Text == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

type ListSpacesParams struct {
	MaxResults *int   `json:"max_results,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (p *ListSpacesParams) Validate() error {
	if p.Type != "" && p.Type != "direct" && p.Type != "group" {
		return fmt.Errorf("type must be 'direct' or 'group'")
	}
	if p.MaxResults != nil && *p.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive")
	}
	return nil
}

// Max returns the effective result cap (default 50).
func (p *ListSpacesParams) Max() int {
	if p.MaxResults != nil {
		return *p.MaxResults
	}
	return 50
}

type GetSpaceDetailsParams struct {
	RoomID string `json:"room_id"`
}

func (p *GetSpaceDetailsParams) Validate() error {
	if p.RoomID == "" {
		return fmt.Errorf("room_id is required")
	}
	return nil
}

type GetMessagesParams struct {
	RoomID      string `json:"room_id"`
	MaxMessages *int   `json:"max_messages,omitempty"`
}

func (p *GetMessagesParams) Validate() error {
	if p.RoomID == "" {
		return fmt.Errorf("room_id is required")
	}
	if p.MaxMessages != nil && *p.MaxMessages < 1 {
		return fmt.Errorf("max_messages must be positive")
	}
	return nil
}

// Max returns the effective message cap (default 20).
func (p *GetMessagesParams) Max() int {
	if p.MaxMessages != nil {
		return *p.MaxMessages
	}
	return 20
}

type CreateSpaceParams struct {
	Title  string `json:"title"`
	TeamID string `json:"team_id,omitempty"`
}

func (p *CreateSpaceParams) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

type AddPersonToSpaceParams struct {
	RoomID      string `json:"room_id"`
	PersonEmail string `json:"person_email"`
	IsModerator bool   `json:"is_moderator,omitempty"`
}

func (p *AddPersonToSpaceParams) Validate() error {
	if p.RoomID == "" {
		return fmt.Errorf("room_id is required")
	}
	if p.PersonEmail == "" {
		return fmt.Errorf("person_email is required")
	}
	return nil
}

type ListSpaceMembersParams struct {
	RoomID string `json:"room_id"`
}

func (p *ListSpaceMembersParams) Validate() error {
	if p.RoomID == "" {
		return fmt.Errorf("room_id is required")
	}
	return nil
}

type GetPersonDetailsParams struct {
	Email    string `json:"email,omitempty"`
	PersonID string `json:"person_id,omitempty"`
}

// Validate enforces the email-or-person_id precondition. It runs before any
// backend call is made.
func (p *GetPersonDetailsParams) Validate() error {
	if p.Email == "" && p.PersonID == "" {
		return fmt.Errorf("either email or person_id must be provided")
	}
	return nil
}

type DeleteMessageParams struct {
	MessageID string `json:"message_id"`
}

func (p *DeleteMessageParams) Validate() error {
	if p.MessageID == "" {
		return fmt.Errorf("message_id is required")
	}
	return nil
}

type SearchSpacesParams struct {
	SearchTerm string `json:"search_term"`
	MaxResults *int   `json:"max_results,omitempty"`
}

func (p *SearchSpacesParams) Validate() error {
	if p.SearchTerm == "" {
		return fmt.Errorf("search_term is required")
	}
	if p.MaxResults != nil && *p.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive")
	}
	return nil
}

// Max returns the effective result cap (default 20).
func (p *SearchSpacesParams) Max() int {
	if p.MaxResults != nil {
		return *p.MaxResults
	}
	return 20
}
