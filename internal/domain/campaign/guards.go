package campaign

// Type guards and extractors. Records loaded from storage may be stale
// or inconsistent (the payload blob may have been written under looser
// rules), so every extractor re-validates and returns nil instead of
// partial data when anything is off.

// typeTagOf narrows the guard argument to a type tag. Guards accept a
// full record, a Type, or a bare type string.
func typeTagOf(v interface{}) (Type, bool) {
	switch r := v.(type) {
	case *Campaign:
		if r == nil {
			return "", false
		}
		return r.Type, true
	case Campaign:
		return r.Type, true
	case Type:
		return r, true
	case string:
		return Type(r), true
	default:
		return "", false
	}
}

// IsDiscountCampaign reports whether the record or tag is a DISCOUNT campaign
func IsDiscountCampaign(v interface{}) bool {
	t, ok := typeTagOf(v)
	return ok && t == TypeDiscount
}

// IsProductCampaign reports whether the record or tag is a PRODUCT campaign
func IsProductCampaign(v interface{}) bool {
	t, ok := typeTagOf(v)
	return ok && t == TypeProduct
}

// IsVideoCampaign reports whether the record or tag is a VIDEO campaign
func IsVideoCampaign(v interface{}) bool {
	t, ok := typeTagOf(v)
	return ok && t == TypeVideo
}

// IsProfileCampaign reports whether the record or tag is a PROFILE campaign
func IsProfileCampaign(v interface{}) bool {
	t, ok := typeTagOf(v)
	return ok && t == TypeProfile
}

// DiscountDataOf extracts the validated DISCOUNT payload, or nil when the
// record's declared type mismatches, the payload is absent, malformed or
// schema-invalid.
func DiscountDataOf(c *Campaign) *DiscountData {
	if c == nil || c.Type != TypeDiscount {
		return nil
	}
	data, _ := DeserializeTypeSpecificData(TypeDiscount, c.TypeSpecificData).(*DiscountData)
	return data
}

// ProductDataOf extracts the validated PRODUCT payload, or nil
func ProductDataOf(c *Campaign) *ProductData {
	if c == nil || c.Type != TypeProduct {
		return nil
	}
	data, _ := DeserializeTypeSpecificData(TypeProduct, c.TypeSpecificData).(*ProductData)
	return data
}

// VideoDataOf extracts the validated VIDEO payload, or nil
func VideoDataOf(c *Campaign) *VideoData {
	if c == nil || c.Type != TypeVideo {
		return nil
	}
	data, _ := DeserializeTypeSpecificData(TypeVideo, c.TypeSpecificData).(*VideoData)
	return data
}

// ProfileDataOf extracts the validated PROFILE payload, or nil
func ProfileDataOf(c *Campaign) *ProfileData {
	if c == nil || c.Type != TypeProfile {
		return nil
	}
	data, _ := DeserializeTypeSpecificData(TypeProfile, c.TypeSpecificData).(*ProfileData)
	return data
}

// ExtractTypeSpecificData dispatches to the extractor matching the
// record's declared type. Returns nil for unrecognized types.
func ExtractTypeSpecificData(c *Campaign) TypeSpecificData {
	if c == nil {
		return nil
	}
	switch c.Type {
	case TypeDiscount:
		if data := DiscountDataOf(c); data != nil {
			return data
		}
	case TypeProduct:
		if data := ProductDataOf(c); data != nil {
			return data
		}
	case TypeVideo:
		if data := VideoDataOf(c); data != nil {
			return data
		}
	case TypeProfile:
		if data := ProfileDataOf(c); data != nil {
			return data
		}
	}
	return nil
}

// HasValidTypeSpecificData reports whether the stored payload currently
// validates against the record's own declared type. Used as the publish
// readiness gate.
func HasValidTypeSpecificData(c *Campaign) bool {
	if c == nil || isEmptyJSON(c.TypeSpecificData) {
		return false
	}
	return ExtractTypeSpecificData(c) != nil
}
