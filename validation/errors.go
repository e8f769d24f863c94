// Package validation holds the client-facing rule-set for guests, rooms and
// reservations: field formats, cross-field checks and the reservation status
// machine. It is deliberately free of HTTP and database imports so the same
// predicates run identically from handlers and tests.
package validation

// FieldErrors maps a field path to the message rendered next to that input.
// Only the first error recorded per field is kept, matching how the console
// shows a single inline message per field.
type FieldErrors map[string]string

func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}
