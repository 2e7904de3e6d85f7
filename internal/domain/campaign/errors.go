package campaign

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/brandlink/brandlink-api/internal/pkg/response"
)

// Stable machine-readable error codes. Clients branch on these; never
// rename without a migration plan.
const (
	CodeMissingTypeSpecificData = "MISSING_TYPE_SPECIFIC_DATA"
	CodeInvalidTypeSpecificData = "INVALID_TYPE_SPECIFIC_DATA"
	CodeInvalidProductReference = "INVALID_PRODUCT_REFERENCE"
	CodeInvalidCouponReference  = "INVALID_COUPON_REFERENCE"
	CodeVideoUploadFailed       = "VIDEO_UPLOAD_FAILED"
	CodeInvalidVideoFile        = "INVALID_VIDEO_FILE"
	CodeInvalidCampaignType     = "INVALID_CAMPAIGN_TYPE"
	CodeTypeChangeNotAllowed    = "TYPE_CHANGE_NOT_ALLOWED"
	CodeJSONParseError          = "JSON_PARSE_ERROR"
	CodeDatabaseConstraint      = "DATABASE_CONSTRAINT_ERROR"
	CodeCampaignNotFound        = "CAMPAIGN_NOT_FOUND"
	CodePermissionDenied        = "PERMISSION_DENIED"
)

var ErrInvalidStatusTransition = errors.New("invalid campaign status transition")

// Error is the closed hierarchy of campaign domain errors. Every kind
// carries a stable code and HTTP status so boundaries can map failures
// without inspecting message strings.
type Error struct {
	Code    string
	Status  int
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ResponseBody renders the uniform API error envelope
func (e *Error) ResponseBody() response.Response {
	resp := response.Response{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
	}
	if len(e.Details) > 0 {
		resp.Details = e.Details
	}
	return resp
}

// IsCode reports whether err is a campaign Error with the given code
func IsCode(err error, code string) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// NewMissingTypeSpecificData is raised when the payload is wholly absent
// where one is required (e.g. at publish time).
func NewMissingTypeSpecificData(t Type) *Error {
	details := map[string]interface{}{}
	if t != "" {
		details["campaignType"] = string(t)
	}
	return &Error{
		Code:    CodeMissingTypeSpecificData,
		Status:  http.StatusBadRequest,
		Message: "Campaign is missing its type-specific data",
		Details: details,
	}
}

// NewInvalidTypeSpecificData is raised when a payload is present but
// fails its type's schema or a cross-field rule.
func NewInvalidTypeSpecificData(violations ValidationErrors) *Error {
	details := map[string]interface{}{}
	for field, msg := range violations {
		details[field] = msg
	}
	return &Error{
		Code:    CodeInvalidTypeSpecificData,
		Status:  http.StatusBadRequest,
		Message: "Campaign type-specific data failed validation",
		Details: details,
	}
}

// NewInvalidProductReference is raised when a referenced product does
// not exist or is not owned by the caller's store.
func NewInvalidProductReference(productID string) *Error {
	return &Error{
		Code:    CodeInvalidProductReference,
		Status:  http.StatusNotFound,
		Message: "Referenced product does not exist or does not belong to your store",
		Details: map[string]interface{}{"productId": productID},
	}
}

// NewInvalidCouponReference is raised when a referenced discount does
// not exist or is invalid.
func NewInvalidCouponReference(couponID string) *Error {
	return &Error{
		Code:    CodeInvalidCouponReference,
		Status:  http.StatusNotFound,
		Message: "Referenced discount does not exist or is invalid",
		Details: map[string]interface{}{"discountId": couponID},
	}
}

// NewVideoUploadFailed wraps a storage failure during video asset upload
func NewVideoUploadFailed(err error) *Error {
	return &Error{
		Code:    CodeVideoUploadFailed,
		Status:  http.StatusInternalServerError,
		Message: "Video upload failed",
		cause:   err,
	}
}

// NewInvalidVideoFile is raised when a video file fails size/format
// preconditions before upload.
func NewInvalidVideoFile(reason string) *Error {
	return &Error{
		Code:    CodeInvalidVideoFile,
		Status:  http.StatusBadRequest,
		Message: "Invalid video file: " + reason,
	}
}

// NewInvalidCampaignType is raised for type tags outside the supported
// set. Details carry the offending value and the full supported list.
func NewInvalidCampaignType(provided string) *Error {
	supported := make([]string, 0, len(SupportedTypes()))
	for _, t := range SupportedTypes() {
		supported = append(supported, string(t))
	}
	return &Error{
		Code:    CodeInvalidCampaignType,
		Status:  http.StatusBadRequest,
		Message: "Unsupported campaign type",
		Details: map[string]interface{}{
			"providedType":   provided,
			"supportedTypes": supported,
		},
	}
}

// NewTypeChangeNotAllowed is raised on attempts to mutate the type
// discriminant after the campaign has left draft.
func NewTypeChangeNotAllowed(current Status) *Error {
	return &Error{
		Code:    CodeTypeChangeNotAllowed,
		Status:  http.StatusForbidden,
		Message: "Campaign type can only be changed while the campaign is a draft",
		Details: map[string]interface{}{"status": string(current)},
	}
}

// NewJSONParseError is raised when a blob is not valid JSON where JSON
// was expected.
func NewJSONParseError(err error) *Error {
	return &Error{
		Code:    CodeJSONParseError,
		Status:  http.StatusBadRequest,
		Message: "Payload is not valid JSON",
		cause:   err,
	}
}

// NewDatabaseConstraintError wraps a uniqueness/constraint violation
// reported by the store.
func NewDatabaseConstraintError(err error) *Error {
	return &Error{
		Code:    CodeDatabaseConstraint,
		Status:  http.StatusConflict,
		Message: "A conflicting campaign already exists",
		cause:   err,
	}
}

// NewCampaignNotFound is raised when an identifier does not resolve
func NewCampaignNotFound(id uuid.UUID) *Error {
	return &Error{
		Code:    CodeCampaignNotFound,
		Status:  http.StatusNotFound,
		Message: "Campaign not found",
		Details: map[string]interface{}{"campaignId": id.String()},
	}
}

// NewPermissionDenied is raised when the caller lacks rights to act on
// the campaign.
func NewPermissionDenied() *Error {
	return &Error{
		Code:    CodePermissionDenied,
		Status:  http.StatusForbidden,
		Message: "You can only manage your own campaigns",
	}
}
