package campaign

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/brandlink/brandlink-api/internal/pkg/response"
)

// PostgreSQL SQLSTATE codes surfaced by the persistence layer
const (
	sqlStateUniqueViolation = "23505"
	sqlStateFKViolation     = "23503"
	sqlStateCheckViolation  = "23514"
)

// FormatErrorResponse maps any error surfaced by a campaign operation to
// the uniform API envelope and its HTTP status:
//   - campaign domain errors carry their own code and status;
//   - storage constraint violations become DATABASE_CONSTRAINT_ERROR
//     (409 for uniqueness, 404 for a missing foreign key or row);
//   - field-level validation failures become a 400 with per-field details;
//   - disallowed lifecycle transitions become a 409;
//   - anything else degrades to an opaque 500 so internals never leak.
func FormatErrorResponse(err error) (response.Response, int) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.ResponseBody(), domainErr.Status
	}

	var violations ValidationErrors
	if errors.As(err, &violations) {
		details := map[string]interface{}{}
		for field, msg := range violations {
			details[field] = msg
		}
		return response.Response{
			Success: false,
			Error:   "Validation failed",
			Code:    "VALIDATION_ERROR",
			Details: details,
		}, http.StatusBadRequest
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case sqlStateUniqueViolation, sqlStateCheckViolation:
			return response.Response{
				Success: false,
				Error:   "A conflicting record already exists",
				Code:    CodeDatabaseConstraint,
			}, http.StatusConflict
		case sqlStateFKViolation:
			return response.Response{
				Success: false,
				Error:   "Referenced record does not exist",
				Code:    CodeDatabaseConstraint,
			}, http.StatusNotFound
		}
	}

	if errors.Is(err, ErrInvalidStatusTransition) {
		return response.Response{
			Success: false,
			Error:   "Campaign status cannot change this way",
			Code:    "INVALID_STATUS_TRANSITION",
		}, http.StatusConflict
	}

	if errors.Is(err, sql.ErrNoRows) {
		return response.Response{
			Success: false,
			Error:   "Record not found",
			Code:    "NOT_FOUND",
		}, http.StatusNotFound
	}

	return response.Response{
		Success: false,
		Error:   "An unexpected error occurred",
		Code:    "INTERNAL_ERROR",
	}, http.StatusInternalServerError
}

// LogError logs a campaign operation failure with caller-supplied
// context fields. Domain errors mapping below 500 are expected outcomes
// and log at info; everything else logs at error severity.
func LogError(err error, context map[string]interface{}) {
	if err == nil {
		return
	}

	_, status := FormatErrorResponse(err)

	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Info()
	}

	event = event.Err(err).Int("status", status)

	var domainErr *Error
	if errors.As(err, &domainErr) {
		event = event.Str("code", domainErr.Code)
	}

	for key, value := range context {
		event = event.Interface(key, value)
	}

	event.Msg("Campaign operation failed")
}
