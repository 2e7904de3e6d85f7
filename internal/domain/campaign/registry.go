package campaign

import (
	"encoding/json"
)

// Schema validates arbitrary payloads against one campaign type's rules
type Schema struct {
	campaignType Type
	newPayload   func() TypeSpecificData
}

// Result is the uniform outcome of payload validation. Invalidity is a
// value, not an error: OK false with Violations set means the payload
// does not match the schema.
type Result struct {
	OK         bool
	Data       TypeSpecificData
	Violations ValidationErrors
}

// schemaRegistry maps each type tag to its payload constructor. Built
// once at init and never mutated; safe for concurrent readers.
var schemaRegistry = map[Type]Schema{
	TypeDiscount: {campaignType: TypeDiscount, newPayload: func() TypeSpecificData { return &DiscountData{} }},
	TypeProduct:  {campaignType: TypeProduct, newPayload: func() TypeSpecificData { return &ProductData{} }},
	TypeVideo:    {campaignType: TypeVideo, newPayload: func() TypeSpecificData { return &VideoData{} }},
	TypeProfile:  {campaignType: TypeProfile, newPayload: func() TypeSpecificData { return &ProfileData{} }},
}

// SchemaFor resolves the schema governing the given type tag. Unknown
// tags fail closed: callers that want a permissive fallback for display
// purposes must catch the error and default explicitly.
func SchemaFor(t Type) (Schema, error) {
	schema, ok := schemaRegistry[t]
	if !ok {
		return Schema{}, NewInvalidCampaignType(string(t))
	}
	return schema, nil
}

// Type returns the tag this schema validates
func (s Schema) Type() Type {
	return s.campaignType
}

// Validate decodes raw into this schema's payload shape and runs the
// structural and cross-field checks. raw may be a JSON string, []byte,
// json.RawMessage, or an already-parsed value.
func (s Schema) Validate(raw interface{}) (Result, error) {
	data, err := toJSONBytes(raw)
	if err != nil {
		return Result{}, err
	}

	payload := s.newPayload()
	if err := json.Unmarshal(data, payload); err != nil {
		return Result{}, NewJSONParseError(err)
	}

	if violations := payload.Validate(); violations != nil {
		return Result{OK: false, Violations: violations}, nil
	}

	return Result{OK: true, Data: payload}, nil
}

// ValidateTypeData resolves the schema for the given tag and validates
// the payload against it. The returned error covers precondition
// failures (unknown tag, unparsable JSON); schema invalidity is
// reported through the Result.
func ValidateTypeData(t Type, raw interface{}) (Result, error) {
	schema, err := SchemaFor(t)
	if err != nil {
		return Result{}, err
	}
	return schema.Validate(raw)
}

func toJSONBytes(raw interface{}) ([]byte, error) {
	switch v := raw.(type) {
	case nil:
		return nil, NewJSONParseError(nil)
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		// Already-parsed value (map, struct); re-encode for a uniform path.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, NewJSONParseError(err)
		}
		return data, nil
	}
}

// typeMeta carries the display attributes keyed off the discriminant
type typeMeta struct {
	Label       string
	Icon        string
	Description string
}

var typeMetaRegistry = map[Type]typeMeta{
	TypeDiscount: {
		Label:       "Discount Code",
		Icon:        "percent",
		Description: "Influencers share a discount code or coupon with their audience.",
	},
	TypeProduct: {
		Label:       "Product Promotion",
		Icon:        "package",
		Description: "Influencers feature one of the store's products in their content.",
	},
	TypeVideo: {
		Label:       "Video Content",
		Icon:        "video",
		Description: "Influencers produce video content following the campaign brief.",
	},
	TypeProfile: {
		Label:       "Profile Growth",
		Icon:        "user",
		Description: "Influencers drive followers and engagement to the store's profile.",
	},
}

// TypeLabel returns the display label for a type tag. Display lookups
// default to "Unknown" for unrecognized tags instead of failing; the
// authoritative validation path goes through SchemaFor and fails closed.
func TypeLabel(t Type) string {
	if meta, ok := typeMetaRegistry[t]; ok {
		return meta.Label
	}
	return "Unknown"
}

// TypeIcon returns the icon tag for a type tag
func TypeIcon(t Type) string {
	if meta, ok := typeMetaRegistry[t]; ok {
		return meta.Icon
	}
	return "help-circle"
}

// TypeDescription returns the one-line description for a type tag
func TypeDescription(t Type) string {
	if meta, ok := typeMetaRegistry[t]; ok {
		return meta.Description
	}
	return ""
}
