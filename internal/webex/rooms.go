package webex

import (
	"context"
	"net/url"
	"strconv"
)

// ListRoomsOpts filters GET /rooms.
type ListRoomsOpts struct {
	Max  int    // maximum rooms to return; 0 means server default
	Type string // "direct" or "group"; "" means both
}

// ListRooms fetches the rooms visible to the authenticated account.
func (c *Client) ListRooms(ctx context.Context, opts ListRoomsOpts) ([]Room, error) {
	query := url.Values{}
	if opts.Max > 0 {
		query.Set("max", strconv.Itoa(opts.Max))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}

	var envelope struct {
		Items []Room `json:"items"`
	}
	if err := c.do(ctx, "GET", "/rooms", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// GetRoom fetches a single room by ID.
func (c *Client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	var room Room
	if err := c.do(ctx, "GET", "/rooms/"+url.PathEscape(roomID), nil, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a new room, optionally scoped to a team.
func (c *Client) CreateRoom(ctx context.Context, req RoomRequest) (*Room, error) {
	var room Room
	if err := c.do(ctx, "POST", "/rooms", nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}
