package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"webex-mcp/internal/webex"
)

// Room/space tool handlers.

type spaceRecord struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Created      string  `json:"created"`
	LastActivity *string `json:"lastActivity"`
}

type listSpacesRecord struct {
	TotalSpaces int           `json:"total_spaces"`
	Spaces      []spaceRecord `json:"spaces"`
}

type spaceDetailsRecord struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Created      string  `json:"created"`
	LastActivity *string `json:"lastActivity"`
	CreatorID    *string `json:"creatorId"`
}

type createdSpaceRecord struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Created string `json:"created"`
}

type searchSpacesRecord struct {
	SearchTerm   string               `json:"search_term"`
	MatchesFound int                  `json:"matches_found"`
	Spaces       []createdSpaceRecord `json:"spaces"`
}

func HandleListSpaces(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params ListSpacesParams
	if err := unmarshalParams(raw, &params); err != nil {
		return "", err
	}
	if err := params.Validate(); err != nil {
		return "", NewToolError(ErrCodeInvalidParams, err.Error())
	}

	api, err := tc.API()
	if err != nil {
		return "", err
	}

	rooms, err := api.ListRooms(ctx, webex.ListRoomsOpts{Max: params.Max(), Type: params.Type})
	if err != nil {
		return "", WrapClientError(err)
	}

	spaces := make([]spaceRecord, 0, len(rooms))
	for _, room := range rooms {
		spaces = append(spaces, spaceRecord{
			ID:           room.ID,
			Title:        room.Title,
			Type:         room.Type,
			Created:      room.Created,
			LastActivity: room.LastActivity,
		})
	}

	record := listSpacesRecord{
		TotalSpaces: len(spaces),
		Spaces:      spaces,
	}

	return renderRecord(fmt.Sprintf("Found %d spaces:", len(spaces)), record)
}

func HandleGetSpaceDetails(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params GetSpaceDetailsParams
	if err := unmarshalParams(raw, &params); err != nil {
		return "", err
	}
	if err := params.Validate(); err != nil {
		return "", NewToolError(ErrCodeInvalidParams, err.Error())
	}

	api, err := tc.API()
	if err != nil {
		return "", err
	}

	room, err := api.GetRoom(ctx, params.RoomID)
	if err != nil {
		return "", WrapClientError(err)
	}

	record := spaceDetailsRecord{
		ID:           room.ID,
		Title:        room.Title,
		Type:         room.Type,
		Created:      room.Created,
		LastActivity: room.LastActivity,
		CreatorID:    room.CreatorID,
	}

	return renderRecord("Space details:", record)
}

func HandleCreateSpace(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params CreateSpaceParams
	if err := unmarshalParams(raw, &params); err != nil {
		return "", err
	}
	if err := params.Validate(); err != nil {
		return "", NewToolError(ErrCodeInvalidParams, err.Error())
	}

	api, err := tc.API()
	if err != nil {
		return "", err
	}

	room, err := api.CreateRoom(ctx, webex.RoomRequest{Title: params.Title, TeamID: params.TeamID})
	if err != nil {
		return "", WrapClientError(err)
	}

	record := createdSpaceRecord{
		ID:      room.ID,
		Title:   room.Title,
		Type:    room.Type,
		Created: room.Created,
	}

	return renderRecord("Space created successfully!", record)
}

// HandleSearchSpaces matches space titles client-side: the Webex API has no
// server-side title search, so up to 100 rooms are fetched and filtered by a
// case-insensitive substring match, keeping the backend's listing order.
func HandleSearchSpaces(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params SearchSpacesParams
	if err := unmarshalParams(raw, &params); err != nil {
		return "", err
	}
	if err := params.Validate(); err != nil {
		return "", NewToolError(ErrCodeInvalidParams, err.Error())
	}

	api, err := tc.API()
	if err != nil {
		return "", err
	}

	rooms, err := api.ListRooms(ctx, webex.ListRoomsOpts{Max: 100})
	if err != nil {
		return "", WrapClientError(err)
	}

	term := strings.ToLower(params.SearchTerm)
	matches := make([]createdSpaceRecord, 0)
	for _, room := range rooms {
		if len(matches) >= params.Max() {
			break
		}
		if strings.Contains(strings.ToLower(room.Title), term) {
			matches = append(matches, createdSpaceRecord{
				ID:      room.ID,
				Title:   room.Title,
				Type:    room.Type,
				Created: room.Created,
			})
		}
	}

	record := searchSpacesRecord{
		SearchTerm:   term,
		MatchesFound: len(matches),
		Spaces:       matches,
	}

	return renderRecord(fmt.Sprintf("Found %d matching spaces:", len(matches)), record)
}
