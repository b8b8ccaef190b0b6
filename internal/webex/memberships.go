package webex

import (
	"context"
	"net/url"
)

// ListMemberships fetches all memberships of a room.
func (c *Client) ListMemberships(ctx context.Context, roomID string) ([]Membership, error) {
	query := url.Values{}
	query.Set("roomId", roomID)

	var envelope struct {
		Items []Membership `json:"items"`
	}
	if err := c.do(ctx, "GET", "/memberships", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// CreateMembership adds a person to a room by email.
func (c *Client) CreateMembership(ctx context.Context, req MembershipRequest) (*Membership, error) {
	var membership Membership
	if err := c.do(ctx, "POST", "/memberships", nil, req, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}
