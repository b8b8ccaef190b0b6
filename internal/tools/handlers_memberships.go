package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"webex-mcp/internal/webex"
)

// Membership tool handlers.

type membershipRecord struct {
	MembershipID string `json:"membership_id"`
	RoomID       string `json:"room_id"`
	PersonEmail  string `json:"person_email"`
	IsModerator  bool   `json:"is_moderator"`
}

type memberRecord struct {
	PersonEmail       string `json:"person_email"`
	PersonDisplayName string `json:"person_display_name"`
	IsModerator       bool   `json:"is_moderator"`
	Created           string `json:"created"`
}

type membersRecord struct {
	RoomID      string         `json:"room_id"`
	MemberCount int            `json:"member_count"`
	Members     []memberRecord `json:"members"`
}

func HandleAddPersonToSpace(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params AddPersonToSpaceParams
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

	membership, err := api.CreateMembership(ctx, webex.MembershipRequest{
		RoomID:      params.RoomID,
		PersonEmail: params.PersonEmail,
		IsModerator: params.IsModerator,
	})
	if err != nil {
		return "", WrapClientError(err)
	}

	record := membershipRecord{
		MembershipID: membership.ID,
		RoomID:       membership.RoomID,
		PersonEmail:  membership.PersonEmail,
		IsModerator:  membership.IsModerator,
	}

	return renderRecord("Person added successfully!", record)
}

func HandleListSpaceMembers(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params ListSpaceMembersParams
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

	memberships, err := api.ListMemberships(ctx, params.RoomID)
	if err != nil {
		return "", WrapClientError(err)
	}

	members := make([]memberRecord, 0, len(memberships))
	for _, membership := range memberships {
		members = append(members, memberRecord{
			PersonEmail:       membership.PersonEmail,
			PersonDisplayName: membership.PersonDisplayName,
			IsModerator:       membership.IsModerator,
			Created:           membership.Created,
		})
	}

	record := membersRecord{
		RoomID:      params.RoomID,
		MemberCount: len(members),
		Members:     members,
	}

	return renderRecord(fmt.Sprintf("Found %d members:", len(members)), record)
}
