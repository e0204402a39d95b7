package validator

// Result is the outcome of validating one record.
type Result[F ~string] struct {
	// Valid is true only when every field rule passed.
	Valid bool `json:"valid"`
	// Errors maps each failing field that has a message to that message.
	Errors map[F]string `json:"errors"`
	// Failed lists every failing field in rule-set order, including fields
	// without a message.
	Failed []F `json:"-"`
}

// Has reports whether field failed validation.
func (r Result[F]) Has(field F) bool {
	for _, f := range r.Failed {
		if f == field {
			return true
		}
	}
	return false
}

// Message returns the error message for field, if any.
func (r Result[F]) Message(field F) (string, bool) {
	msg, ok := r.Errors[field]
	return msg, ok
}

// Err returns nil for a valid result, otherwise ValidationErrors with one
// entry per failing field in rule-set order.
func (r Result[F]) Err() error {
	if r.Valid {
		return nil
	}

	errs := make(ValidationErrors, 0, len(r.Failed))
	for _, field := range r.Failed {
		errs.Add(ValidationError{
			Field:   string(field),
			Message: r.Errors[field],
		})
	}
	return errs
}
