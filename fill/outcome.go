// Package fill contains the field-resolution and fill engine: locator
// primitives that find fields on unversioned third-party forms, and
// per-kind resolvers that perform the minimal interaction producing a
// durable value change. Everything is best-effort; resolvers report an
// Outcome instead of returning errors, so one missing field never aborts
// the rest of a pass.
package fill

// Status classifies how a single field attempt ended.
type Status string

const (
	// StatusFilled means an interaction ran and, where checkable, the
	// resulting state matches the requested value.
	StatusFilled Status = "filled"
	// StatusSkipped means the field was already populated or the answer
	// was already selected, so nothing was mutated.
	StatusSkipped Status = "skipped"
	// StatusNotFound means no predicate, text anchor, or question block
	// resolved within its wait window.
	StatusNotFound Status = "not_found"
	// StatusFailed means an element was found but the action raised.
	StatusFailed Status = "failed"
	// StatusUnverified means the action completed but post-action state
	// does not match intent. Logged as a warning, never retried.
	StatusUnverified Status = "unverified"
)

// Outcome is the result of one field attempt. Reason carries the detail a
// log line or report row needs; it is empty for clean fills.
type Outcome struct {
	Field  string
	Status Status
	Reason string
}

// Ok reports whether the attempt left the field in the desired state,
// counting an untouched already-correct field as success.
func (o Outcome) Ok() bool {
	return o.Status == StatusFilled || o.Status == StatusSkipped
}

func Filled(field string) Outcome {
	return Outcome{Field: field, Status: StatusFilled}
}

func Skipped(field, reason string) Outcome {
	return Outcome{Field: field, Status: StatusSkipped, Reason: reason}
}

func NotFound(field, reason string) Outcome {
	return Outcome{Field: field, Status: StatusNotFound, Reason: reason}
}

func Failed(field, reason string) Outcome {
	return Outcome{Field: field, Status: StatusFailed, Reason: reason}
}

func Unverified(field, reason string) Outcome {
	return Outcome{Field: field, Status: StatusUnverified, Reason: reason}
}
