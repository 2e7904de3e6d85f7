package campaign

import (
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"
)

// Structural and semantic limits enforced by the per-type schemas.
// MaxVideoSizeBytes matches the upload ceiling in pkg/storage.
const (
	MaxVideoSizeBytes     = 500 * 1024 * 1024
	MinInstructionsLen    = 10
	MinVideoCaptionLen    = 10
	MinCampaignBriefLen   = 50
	MinCampaignGoalsLen   = 50
	MinSuccessCriteriaLen = 30
)

// VideoFormats is the closed set of accepted video containers
var VideoFormats = []string{"mp4", "mov", "avi", "webm"}

// handlePattern accepts an optional leading "@" followed by word or dot
// characters, matching handles across the supported platforms.
var handlePattern = regexp.MustCompile(`^@?[\w.]+$`)

func isValidVideoFormat(format string) bool {
	for _, f := range VideoFormats {
		if format == f {
			return true
		}
	}
	return false
}

// isAbsoluteURL reports whether s parses as an absolute http(s) URL
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Validate checks the DISCOUNT payload. Cross-field rule: at least one of
// discountId / discountCode must be present.
func (d *DiscountData) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if d.DiscountID == "" && d.DiscountCode == "" {
		errs["discountId"] = "either discountId or discountCode is required"
	}

	switch d.ApplicableTo {
	case AudienceInfluencers, AudienceCustomers, AudienceBoth:
	case "":
		errs["applicableTo"] = "applicableTo is required"
	default:
		errs["applicableTo"] = "applicableTo must be INFLUENCERS, CUSTOMERS or BOTH"
	}

	if runeLen(d.Instructions) < MinInstructionsLen {
		errs["instructions"] = "instructions must be at least 10 characters"
	}

	if d.UsageLimit < 0 {
		errs["usageLimit"] = "usageLimit must be positive"
	}

	if d.ExpiresAt != "" {
		if _, err := time.Parse(time.RFC3339, d.ExpiresAt); err != nil {
			errs["expiresAt"] = "expiresAt must be an RFC3339 timestamp"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the PRODUCT payload. No field is required; URL-like
// fields must be empty or well-formed absolute URLs.
func (p *ProductData) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if p.ProductLink != "" && !isAbsoluteURL(p.ProductLink) {
		errs["productLink"] = "productLink must be a well-formed URL"
	}
	if p.ShopURL != "" && !isAbsoluteURL(p.ShopURL) {
		errs["shopUrl"] = "shopUrl must be a well-formed URL"
	}
	if p.ImageURL != "" && !isAbsoluteURL(p.ImageURL) {
		errs["imageUrl"] = "imageUrl must be a well-formed URL"
	}
	if p.DisplayPrice < 0 {
		errs["displayPrice"] = "displayPrice must be positive"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the VIDEO payload
func (v *VideoData) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if v.VideoURL == "" {
		errs["videoUrl"] = "videoUrl is required"
	} else if !isAbsoluteURL(v.VideoURL) {
		errs["videoUrl"] = "videoUrl must be a well-formed URL"
	}

	if v.FileName == "" {
		errs["fileName"] = "fileName is required"
	}

	if v.VideoSize <= 0 {
		errs["videoSize"] = "videoSize must be positive"
	} else if v.VideoSize > MaxVideoSizeBytes {
		errs["videoSize"] = "videoSize exceeds the 500 MiB ceiling"
	}

	if !isValidVideoFormat(v.VideoFormat) {
		errs["videoFormat"] = "videoFormat must be one of: mp4, mov, avi, webm"
	}

	if runeLen(v.VideoCaption) < MinVideoCaptionLen {
		errs["videoCaption"] = "videoCaption must be at least 10 characters"
	}

	if runeLen(v.CampaignBrief) < MinCampaignBriefLen {
		errs["campaignBrief"] = "campaignBrief must be at least 50 characters"
	}

	if v.DurationSeconds < 0 {
		errs["durationSeconds"] = "durationSeconds must be positive"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the PROFILE payload. Cross-field rule: at least one of
// the target metrics must be present and positive.
func (p *ProfileData) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if p.ProfileURL == "" {
		errs["profileUrl"] = "profileUrl is required"
	} else if !isAbsoluteURL(p.ProfileURL) {
		errs["profileUrl"] = "profileUrl must be a well-formed URL"
	}

	if p.ProfilePlatform == "" {
		errs["profilePlatform"] = "profilePlatform is required"
	}

	if p.ProfileHandle == "" {
		errs["profileHandle"] = "profileHandle is required"
	} else if !handlePattern.MatchString(p.ProfileHandle) {
		errs["profileHandle"] = "profileHandle may contain letters, digits, dots and underscores, optionally prefixed with @"
	}

	switch p.ProfileType {
	case ProfilePersonal, ProfileBusiness, ProfileBrand:
	case "":
		errs["profileType"] = "profileType is required"
	default:
		errs["profileType"] = "profileType must be PERSONAL, BUSINESS or BRAND"
	}

	if runeLen(p.CampaignGoals) < MinCampaignGoalsLen {
		errs["campaignGoals"] = "campaignGoals must be at least 50 characters"
	}

	if verr := p.TargetMetrics.validate(); verr != "" {
		errs["targetMetrics"] = verr
	}

	if runeLen(p.SuccessCriteria) < MinSuccessCriteriaLen {
		errs["successCriteria"] = "successCriteria must be at least 30 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m TargetMetrics) validate() string {
	hasAny := false
	if m.FollowersTarget != nil {
		if *m.FollowersTarget <= 0 {
			return "followersTarget must be positive"
		}
		hasAny = true
	}
	if m.EngagementTarget != nil {
		if *m.EngagementTarget <= 0 {
			return "engagementTarget must be positive"
		}
		hasAny = true
	}
	if m.ReachTarget != nil {
		if *m.ReachTarget <= 0 {
			return "reachTarget must be positive"
		}
		hasAny = true
	}
	if !hasAny {
		return "at least one of followersTarget, engagementTarget or reachTarget is required"
	}
	return ""
}
