package campaign

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	payloads := []TypeSpecificData{
		validDiscountData(),
		validProductData(),
		validVideoData(),
		validProfileData(),
	}

	for _, original := range payloads {
		blob, err := SerializeTypeSpecificData(original)
		if err != nil {
			t.Fatalf("%s: serialize failed: %v", original.CampaignType(), err)
		}

		restored := DeserializeTypeSpecificData(original.CampaignType(), blob)
		if restored == nil {
			t.Fatalf("%s: deserialize returned nil", original.CampaignType())
		}
		if !reflect.DeepEqual(original, restored) {
			t.Fatalf("%s: round trip mismatch\n got %#v\nwant %#v", original.CampaignType(), restored, original)
		}
	}
}

func TestSerialize_NilPayload(t *testing.T) {
	_, err := SerializeTypeSpecificData(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsCode(err, CodeMissingTypeSpecificData) {
		t.Fatalf("expected MISSING_TYPE_SPECIFIC_DATA, got %v", err)
	}
}

func TestSerialize_KeepsCamelCaseKeys(t *testing.T) {
	blob, err := SerializeTypeSpecificData(validProfileData())
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"profileUrl", "profileHandle", "campaignGoals", "targetMetrics", "successCriteria"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in blob, got %v", key, decoded)
		}
	}
	if metrics, ok := decoded["targetMetrics"].(map[string]interface{}); !ok {
		t.Error("targetMetrics should be an object")
	} else if _, ok := metrics["followersTarget"]; !ok {
		t.Errorf("expected nested followersTarget, got %v", metrics)
	}
}

func TestDeserialize_DefensiveNil(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		raw  interface{}
	}{
		{"nil raw", TypeDiscount, nil},
		{"empty bytes", TypeDiscount, []byte{}},
		{"json null", TypeDiscount, []byte("null")},
		{"whitespace", TypeDiscount, "   "},
		{"malformed", TypeVideo, `{"videoUrl":`},
		{"unknown tag", Type("BOGUS"), `{}`},
		{"schema invalid", TypeVideo, `{"videoUrl":"https://x.example/v.mp4"}`},
		{"wrong variant for tag", TypeProfile, `{"discountCode":"SUMMER20"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeserializeTypeSpecificData(tc.typ, tc.raw); got != nil {
				t.Fatalf("expected nil, got %#v", got)
			}
		})
	}
}

func TestDeserialize_EmptyProductPayloadIsValid(t *testing.T) {
	// PRODUCT has no required fields, so an empty object parses into a
	// usable payload rather than nil.
	got := DeserializeTypeSpecificData(TypeProduct, `{}`)
	if got == nil {
		t.Fatal("empty product payload should deserialize")
	}
	if _, ok := got.(*ProductData); !ok {
		t.Fatalf("expected *ProductData, got %T", got)
	}
}
