package campaign

import (
	"sort"
	"strings"
)

// The payload structs below keep the camelCase JSON keys the original web
// application wrote into the type_specific_data blobs; stored rows must
// round-trip unchanged.

// DiscountAudience says who a discount campaign applies to
type DiscountAudience string

const (
	AudienceInfluencers DiscountAudience = "INFLUENCERS"
	AudienceCustomers   DiscountAudience = "CUSTOMERS"
	AudienceBoth        DiscountAudience = "BOTH"
)

// ProfileCategory classifies the promoted profile
type ProfileCategory string

const (
	ProfilePersonal ProfileCategory = "PERSONAL"
	ProfileBusiness ProfileCategory = "BUSINESS"
	ProfileBrand    ProfileCategory = "BRAND"
)

// TypeSpecificData is the tagged union of campaign payload variants.
// Implementations are pure value types; Validate never mutates state and
// treats invalidity as a normal, representable outcome.
type TypeSpecificData interface {
	CampaignType() Type
	Validate() ValidationErrors
}

// ValidationErrors maps a violation path (camelCase JSON field name,
// dotted for nested fields) to a human-readable message. The zero-length
// map is never returned; validators return nil when the payload is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// DiscountData is the payload for DISCOUNT campaigns. At least one of
// DiscountID / DiscountCode must be present.
type DiscountData struct {
	DiscountID   string           `json:"discountId,omitempty"`
	DiscountCode string           `json:"discountCode,omitempty"`
	ApplicableTo DiscountAudience `json:"applicableTo"`
	Instructions string           `json:"instructions"`
	UsageLimit   int              `json:"usageLimit,omitempty"`
	ExpiresAt    string           `json:"expiresAt,omitempty"` // RFC3339
}

func (d *DiscountData) CampaignType() Type { return TypeDiscount }

// ProductData is the payload for PRODUCT campaigns. Every field is
// optional; products may be soft-linked. This asymmetry with the other
// variants is intentional and preserved from the stored data.
type ProductData struct {
	ProductID          string  `json:"productId,omitempty"`
	ProductLink        string  `json:"productLink,omitempty"`
	ShopURL            string  `json:"shopUrl,omitempty"`
	DisplayTitle       string  `json:"displayTitle,omitempty"`
	DisplayPrice       float64 `json:"displayPrice,omitempty"`
	ImageURL           string  `json:"imageUrl,omitempty"`
	DisplayDescription string  `json:"displayDescription,omitempty"`
}

func (p *ProductData) CampaignType() Type { return TypeProduct }

// VideoData is the payload for VIDEO campaigns
type VideoData struct {
	VideoURL          string   `json:"videoUrl"`
	FileName          string   `json:"fileName"`
	VideoSize         int64    `json:"videoSize"`
	VideoFormat       string   `json:"videoFormat"`
	VideoCaption      string   `json:"videoCaption"`
	CampaignBrief     string   `json:"campaignBrief"`
	DurationSeconds   int      `json:"durationSeconds,omitempty"`
	ContentGuidelines string   `json:"contentGuidelines,omitempty"`
	Hashtags          []string `json:"hashtags,omitempty"`
}

func (v *VideoData) CampaignType() Type { return TypeVideo }

// TargetMetrics carries the growth goals of a PROFILE campaign. At least
// one target must be present and positive.
type TargetMetrics struct {
	FollowersTarget  *int     `json:"followersTarget,omitempty"`
	EngagementTarget *float64 `json:"engagementTarget,omitempty"`
	ReachTarget      *int     `json:"reachTarget,omitempty"`
}

// ProfileData is the payload for PROFILE campaigns
type ProfileData struct {
	ProfileURL      string          `json:"profileUrl"`
	ProfilePlatform string          `json:"profilePlatform"`
	ProfileHandle   string          `json:"profileHandle"`
	ProfileType     ProfileCategory `json:"profileType"`
	CampaignGoals   string          `json:"campaignGoals"`
	TargetMetrics   TargetMetrics   `json:"targetMetrics"`
	SuccessCriteria string          `json:"successCriteria"`
	BrandGuidelines string          `json:"brandGuidelines,omitempty"`
}

func (p *ProfileData) CampaignType() Type { return TypeProfile }
