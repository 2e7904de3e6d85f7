package campaign

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func TestErrorTaxonomy_CodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantCode   string
		wantStatus int
	}{
		{"missing data", NewMissingTypeSpecificData(TypeVideo), CodeMissingTypeSpecificData, http.StatusBadRequest},
		{"invalid data", NewInvalidTypeSpecificData(ValidationErrors{"videoUrl": "required"}), CodeInvalidTypeSpecificData, http.StatusBadRequest},
		{"product reference", NewInvalidProductReference("p-1"), CodeInvalidProductReference, http.StatusNotFound},
		{"coupon reference", NewInvalidCouponReference("c-1"), CodeInvalidCouponReference, http.StatusNotFound},
		{"video upload", NewVideoUploadFailed(errors.New("io timeout")), CodeVideoUploadFailed, http.StatusInternalServerError},
		{"video file", NewInvalidVideoFile("empty"), CodeInvalidVideoFile, http.StatusBadRequest},
		{"campaign type", NewInvalidCampaignType("BOGUS"), CodeInvalidCampaignType, http.StatusBadRequest},
		{"type change", NewTypeChangeNotAllowed(StatusPublished), CodeTypeChangeNotAllowed, http.StatusForbidden},
		{"json parse", NewJSONParseError(errors.New("unexpected EOF")), CodeJSONParseError, http.StatusBadRequest},
		{"db constraint", NewDatabaseConstraintError(errors.New("dup")), CodeDatabaseConstraint, http.StatusConflict},
		{"not found", NewCampaignNotFound(uuid.New()), CodeCampaignNotFound, http.StatusNotFound},
		{"permission", NewPermissionDenied(), CodePermissionDenied, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("code %q, want %q", tc.err.Code, tc.wantCode)
			}
			if tc.err.Status != tc.wantStatus {
				t.Errorf("status %d, want %d", tc.err.Status, tc.wantStatus)
			}
			if !IsCode(tc.err, tc.wantCode) {
				t.Error("IsCode should match")
			}
		})
	}
}

func TestError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewVideoUploadFailed(cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause should survive wrapping")
	}

	// The cause also survives another layer of fmt wrapping
	wrapped := fmt.Errorf("saving asset: %w", err)
	var domainErr *Error
	if !errors.As(wrapped, &domainErr) {
		t.Fatal("errors.As should find the domain error")
	}
	if domainErr.Code != CodeVideoUploadFailed {
		t.Fatalf("unexpected code %s", domainErr.Code)
	}
}

func TestInvalidTypeSpecificData_CarriesViolations(t *testing.T) {
	violations := ValidationErrors{
		"videoUrl":  "videoUrl is required",
		"videoSize": "videoSize must be positive",
	}
	err := NewInvalidTypeSpecificData(violations)

	if len(err.Details) != 2 {
		t.Fatalf("expected 2 detail entries, got %v", err.Details)
	}
	if err.Details["videoUrl"] != "videoUrl is required" {
		t.Fatalf("lost violation message: %v", err.Details)
	}
}

func TestFormatErrorResponse_DomainError(t *testing.T) {
	resp, status := FormatErrorResponse(NewTypeChangeNotAllowed(StatusPublished))
	if status != http.StatusForbidden {
		t.Fatalf("status %d, want 403", status)
	}
	if resp.Success {
		t.Fatal("success must be false")
	}
	if resp.Code != CodeTypeChangeNotAllowed {
		t.Fatalf("code %q", resp.Code)
	}
}

func TestFormatErrorResponse_ValidationErrors(t *testing.T) {
	resp, status := FormatErrorResponse(ValidationErrors{"instructions": "too short"})
	if status != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", status)
	}
	if resp.Error != "Validation failed" {
		t.Fatalf("message %q", resp.Error)
	}
	details, ok := resp.Details.(map[string]interface{})
	if !ok || details["instructions"] != "too short" {
		t.Fatalf("details %v", resp.Details)
	}
}

func TestFormatErrorResponse_PqConstraints(t *testing.T) {
	tests := []struct {
		name       string
		code       pq.ErrorCode
		wantStatus int
	}{
		{"unique violation", "23505", http.StatusConflict},
		{"check violation", "23514", http.StatusConflict},
		{"fk violation", "23503", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, status := FormatErrorResponse(&pq.Error{Code: tc.code, Constraint: "campaigns_store_id_fkey"})
			if status != tc.wantStatus {
				t.Fatalf("status %d, want %d", status, tc.wantStatus)
			}
			if resp.Code != CodeDatabaseConstraint {
				t.Fatalf("code %q, want %s", resp.Code, CodeDatabaseConstraint)
			}
		})
	}
}

func TestFormatErrorResponse_StatusTransition(t *testing.T) {
	wrapped := fmt.Errorf("publishing: %w", ErrInvalidStatusTransition)
	resp, status := FormatErrorResponse(wrapped)
	if status != http.StatusConflict {
		t.Fatalf("status %d, want 409", status)
	}
	if resp.Code != "INVALID_STATUS_TRANSITION" {
		t.Fatalf("code %q", resp.Code)
	}
}

func TestFormatErrorResponse_NoRows(t *testing.T) {
	_, status := FormatErrorResponse(sql.ErrNoRows)
	if status != http.StatusNotFound {
		t.Fatalf("status %d, want 404", status)
	}
}

func TestFormatErrorResponse_UnknownErrorIsOpaque(t *testing.T) {
	resp, status := FormatErrorResponse(errors.New("pq: connection refused on 10.0.0.5"))
	if status != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", status)
	}
	if resp.Error != "An unexpected error occurred" {
		t.Fatalf("internal details leaked: %q", resp.Error)
	}
}

func TestMapDBError(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	err := mapDBError(unique)
	if !IsCode(err, CodeDatabaseConstraint) {
		t.Fatalf("unique violation should map, got %v", err)
	}

	var fk error = &pq.Error{Code: "23503"}
	if got := mapDBError(fk); got != fk {
		t.Fatalf("fk violation should pass through, got %v", got)
	}

	plain := errors.New("broken pipe")
	if got := mapDBError(plain); got != plain {
		t.Fatalf("non-pq errors pass through, got %v", got)
	}
}
