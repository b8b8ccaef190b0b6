package tools

import "encoding/json"

// unmarshalParams decodes raw tool arguments into a params struct. An empty
// argument bag is treated as {}.
func unmarshalParams(raw json.RawMessage, params any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, params); err != nil {
		return NewToolError(ErrCodeInvalidParams, "Invalid parameters: "+err.Error())
	}
	return nil
}

// renderRecord assembles the final text for a result content block: a summary
// line followed by the record as indented JSON. Record structs deliberately
// avoid omitempty on optional fields so that absent values render as explicit
// nulls and the output shape stays stable across records.
func renderRecord(summary string, record any) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", NewToolError(ErrCodeInternal, "failed to serialize result: "+err.Error())
	}
	return summary + "\n\n" + string(data), nil
}
