// Package acl is the anti-corruption layer between the calculator's wire
// format and the domain.
//
// Remote DTOs stay unexported in this package. Responses are validated
// before they become domain values, and every failure is translated to a
// domain error:
//
//   - 400 → [domain.ErrValidation], with the first field detail if any
//   - 404 → [domain.ErrNotFound]
//   - 422 UNSUPPORTED_OPERAND → [domain.ErrUnsupportedOperand]
//   - 401, 403, 429, 5xx and transport failures → [domain.ErrUnavailable]
//
// [clients.ErrCircuitOpen] and [clients.ErrMaxRetriesExceeded] also become
// [domain.ErrUnavailable].
package acl
