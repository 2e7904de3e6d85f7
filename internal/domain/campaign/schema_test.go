package campaign

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func validDiscountData() *DiscountData {
	return &DiscountData{
		DiscountCode: "SUMMER20",
		ApplicableTo: AudienceCustomers,
		Instructions: "Share this code in your story",
	}
}

func validProductData() *ProductData {
	return &ProductData{
		ProductLink:  "https://shop.example.com/p/123",
		DisplayTitle: "Wireless Earbuds",
		DisplayPrice: 59.99,
	}
}

func validVideoData() *VideoData {
	return &VideoData{
		VideoURL:      "https://cdn.example.com/v/abc.mp4",
		FileName:      "abc.mp4",
		VideoSize:     12 * 1024 * 1024,
		VideoFormat:   "mp4",
		VideoCaption:  "Unboxing our new product",
		CampaignBrief: strings.Repeat("Show the product in use and mention the discount. ", 3),
	}
}

func validProfileData() *ProfileData {
	return &ProfileData{
		ProfileURL:      "https://instagram.com/brandlink",
		ProfilePlatform: "instagram",
		ProfileHandle:   "@brandlink",
		ProfileType:     ProfileBrand,
		CampaignGoals:   strings.Repeat("Grow our audience among young urban professionals. ", 2),
		TargetMetrics:   TargetMetrics{FollowersTarget: ptr(5000)},
		SuccessCriteria: "Five thousand new followers within sixty days",
	}
}

func TestValidate_MinimalValidPayloads(t *testing.T) {
	payloads := []TypeSpecificData{
		validDiscountData(),
		validProductData(),
		validVideoData(),
		validProfileData(),
		&ProductData{}, // every product field is optional
	}

	for _, p := range payloads {
		if errs := p.Validate(); errs != nil {
			t.Errorf("%s: expected valid, got %v", p.CampaignType(), errs)
		}
	}
}

func TestDiscountData_RequiresIDOrCode(t *testing.T) {
	d := validDiscountData()
	d.DiscountID = ""
	d.DiscountCode = ""

	errs := d.Validate()
	if errs == nil {
		t.Fatal("expected violation")
	}
	if _, ok := errs["discountId"]; !ok {
		t.Fatalf("expected discountId violation, got %v", errs)
	}

	// Either identifier alone satisfies the rule
	d.DiscountID = "0b7cf3a2-8c70-4f14-8f07-1d8cbb5f8a10"
	if errs := d.Validate(); errs != nil {
		t.Fatalf("id alone should be enough, got %v", errs)
	}
	d.DiscountID = ""
	d.DiscountCode = "SUMMER20"
	if errs := d.Validate(); errs != nil {
		t.Fatalf("code alone should be enough, got %v", errs)
	}
}

func TestDiscountData_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DiscountData)
		wantKey string
	}{
		{"bad audience", func(d *DiscountData) { d.ApplicableTo = "EVERYONE" }, "applicableTo"},
		{"missing audience", func(d *DiscountData) { d.ApplicableTo = "" }, "applicableTo"},
		{"short instructions", func(d *DiscountData) { d.Instructions = "go" }, "instructions"},
		{"negative usage limit", func(d *DiscountData) { d.UsageLimit = -1 }, "usageLimit"},
		{"bad expiry", func(d *DiscountData) { d.ExpiresAt = "next friday" }, "expiresAt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDiscountData()
			tc.mutate(d)
			errs := d.Validate()
			if errs == nil {
				t.Fatal("expected violation")
			}
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected key %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func TestProductData_URLsMustBeAbsolute(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductData)
		wantKey string
	}{
		{"relative product link", func(p *ProductData) { p.ProductLink = "/p/123" }, "productLink"},
		{"bare word shop url", func(p *ProductData) { p.ShopURL = "myshop" }, "shopUrl"},
		{"ftp image url", func(p *ProductData) { p.ImageURL = "ftp://img.example.com/a.png" }, "imageUrl"},
		{"negative price", func(p *ProductData) { p.DisplayPrice = -1 }, "displayPrice"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProductData()
			tc.mutate(p)
			errs := p.Validate()
			if errs == nil {
				t.Fatal("expected violation")
			}
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected key %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func TestVideoData_SizeBoundaries(t *testing.T) {
	v := validVideoData()

	v.VideoSize = MaxVideoSizeBytes
	if errs := v.Validate(); errs != nil {
		t.Fatalf("exactly 500 MiB must pass, got %v", errs)
	}

	v.VideoSize = MaxVideoSizeBytes + 1
	errs := v.Validate()
	if errs == nil {
		t.Fatal("one byte over the ceiling must fail")
	}
	if _, ok := errs["videoSize"]; !ok {
		t.Fatalf("expected videoSize violation, got %v", errs)
	}

	v.VideoSize = 0
	if errs := v.Validate(); errs == nil {
		t.Fatal("zero size must fail")
	}
}

func TestVideoData_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VideoData)
		wantKey string
	}{
		{"missing url", func(v *VideoData) { v.VideoURL = "" }, "videoUrl"},
		{"relative url", func(v *VideoData) { v.VideoURL = "videos/abc.mp4" }, "videoUrl"},
		{"missing file name", func(v *VideoData) { v.FileName = "" }, "fileName"},
		{"mkv format", func(v *VideoData) { v.VideoFormat = "mkv" }, "videoFormat"},
		{"empty format", func(v *VideoData) { v.VideoFormat = "" }, "videoFormat"},
		{"short caption", func(v *VideoData) { v.VideoCaption = "too short" }, "videoCaption"},
		{"short brief", func(v *VideoData) { v.CampaignBrief = "not fifty characters" }, "campaignBrief"},
		{"negative duration", func(v *VideoData) { v.DurationSeconds = -3 }, "durationSeconds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validVideoData()
			tc.mutate(v)
			errs := v.Validate()
			if errs == nil {
				t.Fatal("expected violation")
			}
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected key %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func TestProfileData_HandlePattern(t *testing.T) {
	valid := []string{"@jane.doe", "jane_doe", "brandlink", "@x", "a.b_c9"}
	invalid := []string{"jane doe", "jane!", "@jane doe", "j@ne", ""}

	for _, h := range valid {
		p := validProfileData()
		p.ProfileHandle = h
		if errs := p.Validate(); errs != nil {
			t.Errorf("handle %q should be valid, got %v", h, errs)
		}
	}
	for _, h := range invalid {
		p := validProfileData()
		p.ProfileHandle = h
		errs := p.Validate()
		if errs == nil {
			t.Errorf("handle %q should be rejected", h)
			continue
		}
		if _, ok := errs["profileHandle"]; !ok {
			t.Errorf("handle %q: expected profileHandle violation, got %v", h, errs)
		}
	}
}

func TestProfileData_TargetMetrics(t *testing.T) {
	p := validProfileData()
	p.TargetMetrics = TargetMetrics{}
	errs := p.Validate()
	if errs == nil {
		t.Fatal("expected violation for empty target metrics")
	}
	if _, ok := errs["targetMetrics"]; !ok {
		t.Fatalf("expected targetMetrics violation, got %v", errs)
	}

	// Any single positive metric satisfies the rule
	for name, metrics := range map[string]TargetMetrics{
		"followers":  {FollowersTarget: ptr(100)},
		"engagement": {EngagementTarget: ptr(2.5)},
		"reach":      {ReachTarget: ptr(10000)},
	} {
		p := validProfileData()
		p.TargetMetrics = metrics
		if errs := p.Validate(); errs != nil {
			t.Errorf("%s target alone should pass, got %v", name, errs)
		}
	}

	// A present but non-positive metric is a violation even when another
	// metric is fine
	p = validProfileData()
	p.TargetMetrics = TargetMetrics{FollowersTarget: ptr(0), ReachTarget: ptr(10000)}
	if errs := p.Validate(); errs == nil {
		t.Fatal("zero followersTarget must fail")
	}
}

func TestProfileData_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProfileData)
		wantKey string
	}{
		{"missing url", func(p *ProfileData) { p.ProfileURL = "" }, "profileUrl"},
		{"missing platform", func(p *ProfileData) { p.ProfilePlatform = "" }, "profilePlatform"},
		{"bad type", func(p *ProfileData) { p.ProfileType = "CELEBRITY" }, "profileType"},
		{"short goals", func(p *ProfileData) { p.CampaignGoals = "grow" }, "campaignGoals"},
		{"short criteria", func(p *ProfileData) { p.SuccessCriteria = "more followers" }, "successCriteria"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfileData()
			tc.mutate(p)
			errs := p.Validate()
			if errs == nil {
				t.Fatal("expected violation")
			}
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected key %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	v := &VideoData{}
	errs := v.Validate()
	if errs == nil {
		t.Fatal("expected violations")
	}
	for _, key := range []string{"videoUrl", "fileName", "videoSize", "videoFormat", "videoCaption", "campaignBrief"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("expected %q among violations, got %v", key, errs)
		}
	}
}
