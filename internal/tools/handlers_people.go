package tools

import (
	"context"
	"encoding/json"

	"webex-mcp/internal/webex"
)

// People tool handlers.

type personRecord struct {
	ID          string   `json:"id"`
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Created     string   `json:"created"`
}

type myDetailsRecord struct {
	ID          string   `json:"id"`
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	OrgID       string   `json:"orgId"`
	Created     string   `json:"created"`
	Type        string   `json:"type"`
}

// HandleGetPersonDetails resolves a person by email or ID. The email path
// takes the first lookup match; when several accounts share an email-search
// result the outcome depends on the backend's listing order.
func HandleGetPersonDetails(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params GetPersonDetailsParams
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

	var person *webex.Person
	if params.Email != "" {
		people, err := api.ListPeople(ctx, params.Email)
		if err != nil {
			return "", WrapClientError(err)
		}
		if len(people) == 0 {
			return "", NewToolError(ErrCodeInvalidParams, "no person found with email "+params.Email)
		}
		person = &people[0]
	} else {
		person, err = api.GetPerson(ctx, params.PersonID)
		if err != nil {
			return "", WrapClientError(err)
		}
	}

	record := personRecord{
		ID:          person.ID,
		Emails:      person.Emails,
		DisplayName: person.DisplayName,
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		Created:     person.Created,
	}

	return renderRecord("Person details:", record)
}

func HandleGetMyDetails(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	api, err := tc.API()
	if err != nil {
		return "", err
	}

	me, err := api.GetMe(ctx)
	if err != nil {
		return "", WrapClientError(err)
	}

	record := myDetailsRecord{
		ID:          me.ID,
		Emails:      me.Emails,
		DisplayName: me.DisplayName,
		FirstName:   me.FirstName,
		LastName:    me.LastName,
		OrgID:       me.OrgID,
		Created:     me.Created,
		Type:        me.Type,
	}

	return renderRecord("Bot/User details:", record)
}
