// Package dto holds the wire types of the HTTP API and the error envelope
// every failing response uses.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code such as "NOT_FOUND".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details holds field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound           = "NOT_FOUND"
	ErrorCodeValidation         = "VALIDATION_ERROR"
	ErrorCodeUnsupportedOperand = "UNSUPPORTED_OPERAND"
	ErrorCodeForbidden          = "FORBIDDEN"
	ErrorCodeUnauthorized       = "UNAUTHORIZED"
	ErrorCodeUnavailable        = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal           = "INTERNAL_ERROR"
	ErrorCodeTimeout            = "TIMEOUT"
	ErrorCodeBadRequest         = "BAD_REQUEST"
)

const internalMessage = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details
	return resp
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnsupportedOperand:
		return http.StatusUnprocessableEntity
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps an error to a status code and error envelope.
// Unknown errors become a 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	var resp *ErrorResponse

	switch {
	case err == nil:
		return http.StatusOK, nil
	case domain.IsNotFound(err):
		resp = NewErrorResponse(ErrorCodeNotFound, err.Error())
	case domain.IsUnsupportedOperand(err):
		resp = NewErrorResponse(ErrorCodeUnsupportedOperand, err.Error())
	case domain.IsValidation(err):
		resp = NewErrorResponse(ErrorCodeValidation, err.Error())
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}
	case domain.IsUnavailable(err):
		resp = NewErrorResponse(ErrorCodeUnavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		resp = NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")
	default:
		resp = NewErrorResponse(ErrorCodeInternal, internalMessage)
	}

	return HTTPStatusFromCode(resp.Error.Code), resp
}

// traceIDKey is the gin context key a handler may set to override the
// trace ID reported in error envelopes.
const traceIDKey = "trace_id"

// GetTraceID returns the ID error envelopes report: the active span's trace
// ID, else a "trace_id" gin value, else the inbound X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get(traceIDKey); ok {
		s, _ := v.(string)
		return s
	}

	if c.Request != nil {
		return c.GetHeader("X-Request-ID")
	}
	return ""
}

// HandleError writes the envelope for err. Internal errors are logged with
// their full message, which the client never sees.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondWithCode writes an envelope for an adapter-level error.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// AbortWithCode aborts the chain with an envelope. If the response has
// already started only the abort happens.
func AbortWithCode(c *gin.Context, code, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithBindingError writes a 400 for a request that failed to bind
// or validate.
func RespondWithBindingError(c *gin.Context, err error) {
	if IsValidationError(err) {
		c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		).WithTraceID(GetTraceID(c)))
		return
	}
	if domain.IsValidation(err) {
		HandleError(c, err)
		return
	}
	RespondWithCode(c, ErrorCodeBadRequest, "malformed request: "+err.Error())
}
