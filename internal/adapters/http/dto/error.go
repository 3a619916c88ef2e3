package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. Code is an extension
// member naming the board error kind.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem codes reported in ErrorResponse.Code.
const (
	CodeValidation = "validation_failed"
	CodeNotFound   = "not_found"
	CodeStorage    = "storage_unavailable"
	CodeTimeout    = "timeout"
	CodeInternal   = "internal"
)

// storageDetail replaces the cause of a storage failure, which may name
// hosts or tables.
const storageDetail = "the board could not be saved; no changes were made"

type problemKind struct {
	target error
	status int
	code   string
}

// problemKinds is checked in order; the first match wins.
var problemKinds = []problemKind{
	{target: domain.ErrValidation, status: http.StatusBadRequest, code: CodeValidation},
	{target: domain.ErrNotFound, status: http.StatusNotFound, code: CodeNotFound},
	{target: domain.ErrStorage, status: http.StatusServiceUnavailable, code: CodeStorage},
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, code: CodeTimeout},
}

func classify(err error) (int, string) {
	for _, k := range problemKinds {
		if errors.Is(err, k.target) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// NewErrorResponse builds the problem document for err. Storage failures get
// a fixed detail; validation failures list their fields sorted by location.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if code == CodeStorage {
		resp.Detail = storageDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err as
// application/problem+json. Server-side failures are logged with their
// full cause through the request logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if resp.Status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("code", resp.Code),
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.WarnContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  fields[field],
		})
	}
	return details
}
