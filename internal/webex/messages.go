package webex

import (
	"context"
	"net/url"
	"strconv"
)

// ListMessages fetches recent messages for a room, newest first (the order
// the API returns them in). max of 0 means the server default.
func (c *Client) ListMessages(ctx context.Context, roomID string, max int) ([]Message, error) {
	query := url.Values{}
	query.Set("roomId", roomID)
	if max > 0 {
		query.Set("max", strconv.Itoa(max))
	}

	var envelope struct {
		Items []Message `json:"items"`
	}
	if err := c.do(ctx, "GET", "/messages", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// CreateMessage posts a message to a room.
func (c *Client) CreateMessage(ctx context.Context, req MessageRequest) (*Message, error) {
	var msg Message
	if err := c.do(ctx, "POST", "/messages", nil, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteMessage deletes a message by ID. The API enforces permissions;
// insufficient rights come back as an APIError.
func (c *Client) DeleteMessage(ctx context.Context, messageID string) error {
	return c.do(ctx, "DELETE", "/messages/"+url.PathEscape(messageID), nil, nil, nil)
}
