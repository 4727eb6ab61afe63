package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen/exercises-service/internal/adapters/clients"
	"github.com/jsamuelsen/exercises-service/internal/domain"
)

// ErrorResponse is the calculator's error envelope. Both the nested
// {"error":{"code":...}} form and a flat {"code":...} form are accepted.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested part of ErrorResponse.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode returns the nested code, falling back to the flat one.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}
	return e.Code
}

// GetMessage returns the nested message, falling back to the flat one.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Message
}

// Error codes the calculator puts in its envelope.
const (
	ExternalCodeNotFound           = "NOT_FOUND"
	ExternalCodeValidation         = "VALIDATION_ERROR"
	ExternalCodeBadRequest         = "BAD_REQUEST"
	ExternalCodeUnsupportedOperand = "UNSUPPORTED_OPERAND"
)

// ParseErrorResponse decodes an error body. It returns nil when the body is
// missing, not JSON, or carries neither a code nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}
	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError translates a failed call into a domain error. clientErr takes
// precedence; otherwise resp must be a non-2xx response whose body has not
// been read yet. A 2xx response maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}
	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, "circuit breaker open during "+operation)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName, "max retries exceeded during "+operation)
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	code := ""
	if errResp != nil {
		code = errResp.GetCode()
		if m := errResp.GetMessage(); m != "" {
			message = m
		}
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, operation)

	case status == http.StatusBadRequest:
		return validationFrom(errResp, message)

	case status == http.StatusUnprocessableEntity:
		if code == ExternalCodeUnsupportedOperand {
			return fmt.Errorf("%s: %w", message, domain.ErrUnsupportedOperand)
		}
		return validationFrom(errResp, message)

	case status == http.StatusUnauthorized, status == http.StatusForbidden,
		status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}

// validationFrom picks the alphabetically first field detail so the result
// does not depend on map order.
func validationFrom(errResp *ErrorResponse, message string) error {
	if errResp != nil && len(errResp.Error.Details) > 0 {
		field := slices.Sorted(maps.Keys(errResp.Error.Details))[0]
		return domain.NewValidationError(field, errResp.Error.Details[field])
	}
	return domain.NewValidationError("", message)
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// MapExternalCode maps an envelope code to a domain error for callers that
// only have the body, not the status.
func MapExternalCode(code, message, serviceName, operation string) error {
	switch code {
	case ExternalCodeNotFound:
		return domain.NewNotFoundError(serviceName, operation)
	case ExternalCodeValidation, ExternalCodeBadRequest:
		return domain.NewValidationError("", message)
	case ExternalCodeUnsupportedOperand:
		return fmt.Errorf("%s: %w", message, domain.ErrUnsupportedOperand)
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
