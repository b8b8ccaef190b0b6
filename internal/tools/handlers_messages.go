package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"webex-mcp/internal/webex"
)

// Message tool handlers.

type sentMessageRecord struct {
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	Text      string `json:"text"`
	Created   string `json:"created"`
}

type messageRecord struct {
	ID          string `json:"id"`
	PersonEmail string `json:"personEmail"`
	Text        string `json:"text"`
	Created     string `json:"created"`
}

type messagesRecord struct {
	RoomID       string          `json:"room_id"`
	MessageCount int             `json:"message_count"`
	Messages     []messageRecord `json:"messages"`
}

type deletedMessageRecord struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
	Action    string `json:"action"`
}

// HandleSendMessage posts a message to a room. A markdown body takes
// precedence over text in the outgoing payload (text is still sent as the
// plain-text field). A person_email triggers a one-shot people lookup, taking
// the first match, and tags the message as directed to that person.
func HandleSendMessage(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params SendMessageParams
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

	req := webex.MessageRequest{
		RoomID:   params.RoomID,
		Text:     params.Text,
		Markdown: params.Markdown,
	}

	if params.PersonEmail != "" {
		people, err := api.ListPeople(ctx, params.PersonEmail)
		if err != nil {
			return "", WrapClientError(err)
		}
		if len(people) == 0 {
			return "", NewToolError(ErrCodeInvalidParams, "no person found with email "+params.PersonEmail)
		}
		req.ToPersonID = people[0].ID
	}

	msg, err := api.CreateMessage(ctx, req)
	if err != nil {
		return "", WrapClientError(err)
	}

	record := sentMessageRecord{
		MessageID: msg.ID,
		RoomID:    msg.RoomID,
		Text:      msg.Text,
		Created:   msg.Created,
	}

	return renderRecord("Message sent successfully!", record)
}

func HandleGetMessages(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params GetMessagesParams
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

	messages, err := api.ListMessages(ctx, params.RoomID, params.Max())
	if err != nil {
		return "", WrapClientError(err)
	}

	items := make([]messageRecord, 0, len(messages))
	for _, msg := range messages {
		items = append(items, messageRecord{
			ID:          msg.ID,
			PersonEmail: msg.PersonEmail,
			Text:        msg.Text,
			Created:     msg.Created,
		})
	}

	record := messagesRecord{
		RoomID:       params.RoomID,
		MessageCount: len(items),
		Messages:     items,
	}

	return renderRecord(fmt.Sprintf("Retrieved %d messages:", len(items)), record)
}

func HandleDeleteMessage(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
	var params DeleteMessageParams
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

	if err := api.DeleteMessage(ctx, params.MessageID); err != nil {
		return "", WrapClientError(err)
	}

	record := deletedMessageRecord{
		Status:    "success",
		MessageID: params.MessageID,
		Action:    "deleted",
	}

	return renderRecord("Message deleted successfully!", record)
}
