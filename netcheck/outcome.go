package netcheck

// Outcome is the result of a single network probe. A probe either produced
// a payload or it did not; timeouts, lookup errors and malformed records
// all collapse into the Unknown state and never escape as errors.
type Outcome[T any] struct {
	Known bool
	Value T
}

// Probed wraps a successful probe payload.
func Probed[T any](v T) Outcome[T] {
	return Outcome[T]{Known: true, Value: v}
}

// Unknown is the absorbed-failure state shared by every probe.
func Unknown[T any]() Outcome[T] {
	return Outcome[T]{}
}
