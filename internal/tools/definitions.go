package tools

// RegisterAllTools registers the full Webex tool catalog with the registry.
// The registration order is the catalog order advertised by tools/list.
func RegisterAllTools(r *Registry) {
	r.MustRegister(ToolDefinition{
		Name:        "send_message",
		Description: "Send a message to a Webex space/room. Can send text and optionally mention people.",
		InputSchema: BuildSchema(map[string]any{
			"room_id":      StringSchema("The ID of the room/space to send the message to"),
			"text":         StringSchema("The message text to send (supports Markdown)"),
			"markdown":     StringSchema("Optional: Markdown-formatted message (overrides text if provided)"),
			"person_email": StringSchema("Optional: Email of person to mention in the message"),
		}, []string{"room_id", "text"}),
	}, HandleSendMessage)

	r.MustRegister(ToolDefinition{
		Name:        "list_spaces",
		Description: "List all Webex spaces/rooms the bot has access to. Returns space IDs, names, and types.",
		InputSchema: BuildSchema(map[string]any{
			"max_results": IntegerSchema("Maximum number of spaces to return (default: 50)", intPtr(50)),
			"type":        EnumSchema("Filter by space type: 'direct' or 'group'", []string{"direct", "group"}),
		}, nil),
	}, HandleListSpaces)

	r.MustRegister(ToolDefinition{
		Name:        "get_space_details",
		Description: "Get detailed information about a specific Webex space including title, type, and creation date.",
		InputSchema: BuildSchema(map[string]any{
			"room_id": StringSchema("The ID of the room/space"),
		}, []string{"room_id"}),
	}, HandleGetSpaceDetails)

	r.MustRegister(ToolDefinition{
		Name:        "get_messages",
		Description: "Retrieve recent messages from a Webex space. Returns message content, sender, and timestamps.",
		InputSchema: BuildSchema(map[string]any{
			"room_id":      StringSchema("The ID of the room/space"),
			"max_messages": IntegerSchema("Maximum number of messages to retrieve (default: 20)", intPtr(20)),
		}, []string{"room_id"}),
	}, HandleGetMessages)

	r.MustRegister(ToolDefinition{
		Name:        "create_space",
		Description: "Create a new Webex space/room with specified members.",
		InputSchema: BuildSchema(map[string]any{
			"title":   StringSchema("The title/name of the new space"),
			"team_id": StringSchema("Optional: Team ID if creating space within a team"),
		}, []string{"title"}),
	}, HandleCreateSpace)

	r.MustRegister(ToolDefinition{
		Name:        "add_person_to_space",
		Description: "Add a person to a Webex space by their email address.",
		InputSchema: BuildSchema(map[string]any{
			"room_id":      StringSchema("The ID of the room/space"),
			"person_email": StringSchema("Email address of the person to add"),
			"is_moderator": BooleanSchema("Whether to make the person a moderator (default: false)", boolPtr(false)),
		}, []string{"room_id", "person_email"}),
	}, HandleAddPersonToSpace)

	r.MustRegister(ToolDefinition{
		Name:        "list_space_members",
		Description: "List all members in a Webex space including their names, emails, and roles.",
		InputSchema: BuildSchema(map[string]any{
			"room_id": StringSchema("The ID of the room/space"),
		}, []string{"room_id"}),
	}, HandleListSpaceMembers)

	r.MustRegister(ToolDefinition{
		Name:        "get_person_details",
		Description: "Get detailed information about a person by email or person ID.",
		InputSchema: BuildSchema(map[string]any{
			"email":     StringSchema("Email address of the person (use email OR person_id)"),
			"person_id": StringSchema("Person ID (use email OR person_id)"),
		}, nil),
	}, HandleGetPersonDetails)

	r.MustRegister(ToolDefinition{
		Name:        "delete_message",
		Description: "Delete a message from a Webex space (requires appropriate permissions).",
		InputSchema: BuildSchema(map[string]any{
			"message_id": StringSchema("The ID of the message to delete"),
		}, []string{"message_id"}),
	}, HandleDeleteMessage)

	r.MustRegister(ToolDefinition{
		Name:        "search_spaces",
		Description: "Search for Webex spaces by name/title.",
		InputSchema: BuildSchema(map[string]any{
			"search_term": StringSchema("Text to search for in space names"),
			"max_results": IntegerSchema("Maximum number of results (default: 20)", intPtr(20)),
		}, []string{"search_term"}),
	}, HandleSearchSpaces)

	r.MustRegister(ToolDefinition{
		Name:        "get_my_details",
		Description: "Get information about the authenticated bot/user including name, email, and organization.",
		InputSchema: BuildSchema(map[string]any{}, nil),
	}, HandleGetMyDetails)
}
