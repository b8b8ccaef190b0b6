package webex

import (
	"context"
	"net/url"
)

// ListPeople looks up people by email. The API returns matches in its own
// listing order; callers that need exactly one match take the first.
func (c *Client) ListPeople(ctx context.Context, email string) ([]Person, error) {
	query := url.Values{}
	query.Set("email", email)

	var envelope struct {
		Items []Person `json:"items"`
	}
	if err := c.do(ctx, "GET", "/people", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// GetPerson fetches a single person by ID.
func (c *Client) GetPerson(ctx context.Context, personID string) (*Person, error) {
	var person Person
	if err := c.do(ctx, "GET", "/people/"+url.PathEscape(personID), nil, nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// GetMe fetches the authenticated account's own details.
func (c *Client) GetMe(ctx context.Context) (*Person, error) {
	var person Person
	if err := c.do(ctx, "GET", "/people/me", nil, nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
