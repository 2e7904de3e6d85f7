package campaign

import (
	"bytes"
	"encoding/json"
)

// SerializeTypeSpecificData converts a validated payload into its
// storage representation. The result is a deep, lossless structural
// clone: payload types only hold JSON-compatible values (timestamps are
// already normalized to RFC3339 strings by the schema layer).
func SerializeTypeSpecificData(payload TypeSpecificData) (json.RawMessage, error) {
	if payload == nil {
		return nil, NewMissingTypeSpecificData("")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, NewJSONParseError(err)
	}
	return data, nil
}

// DeserializeTypeSpecificData parses and validates a stored blob as the
// given type's payload. Returns nil on any failure: malformed JSON,
// unknown tag, schema mismatch. Stored data may predate the current
// validation rules, so this mirrors the defensive posture of the
// extractors rather than raising.
func DeserializeTypeSpecificData(t Type, raw interface{}) TypeSpecificData {
	if isEmptyRaw(raw) {
		return nil
	}

	result, err := ValidateTypeData(t, raw)
	if err != nil || !result.OK {
		return nil
	}
	return result.Data
}

// isEmptyRaw reports whether raw holds no payload at all
func isEmptyRaw(raw interface{}) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case json.RawMessage:
		return isEmptyJSON(v)
	case []byte:
		return isEmptyJSON(v)
	case string:
		return isEmptyJSON([]byte(v))
	default:
		return false
	}
}

func isEmptyJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
