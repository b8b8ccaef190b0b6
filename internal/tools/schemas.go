package tools

// Common JSON Schema building blocks.

// StringSchema creates a JSON schema for a string field.
func StringSchema(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// IntegerSchema creates a JSON schema for an integer field with an optional
// advertised default.
func IntegerSchema(description string, def *int) map[string]any {
	schema := map[string]any{
		"type":        "integer",
		"description": description,
	}
	if def != nil {
		schema["default"] = *def
	}
	return schema
}

// BooleanSchema creates a JSON schema for a boolean field with an optional
// advertised default.
func BooleanSchema(description string, def *bool) map[string]any {
	schema := map[string]any{
		"type":        "boolean",
		"description": description,
	}
	if def != nil {
		schema["default"] = *def
	}
	return schema
}

// EnumSchema creates a JSON schema for a string field restricted to values.
func EnumSchema(description string, values []string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}

// BuildSchema creates a complete JSON schema object with properties and
// required fields.
func BuildSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
