package validator

// FieldRule associates a predicate with a single record field.
type FieldRule[T any, F ~string] struct {
	Field F
	Check Predicate[T]
}

// Rule creates a FieldRule. The predicate receives the whole record, so a
// field rule may look at other fields of the same record.
func Rule[T any, F ~string](field F, check Predicate[T]) FieldRule[T, F] {
	return FieldRule[T, F]{Field: field, Check: check}
}

// Rules is an ordered field → predicate set.
// Iteration follows the order in which fields were first added.
type Rules[T any, F ~string] struct {
	order  []F
	checks map[F]Predicate[T]
}

// NewRules builds a rule set from the given field rules.
// A field added twice keeps its first position and takes the last predicate.
func NewRules[T any, F ~string](rules ...FieldRule[T, F]) Rules[T, F] {
	var rs Rules[T, F]
	for _, r := range rules {
		rs.Add(r.Field, r.Check)
	}
	return rs
}

// Add registers or replaces the predicate for field.
func (rs *Rules[T, F]) Add(field F, check Predicate[T]) {
	if rs.checks == nil {
		rs.checks = make(map[F]Predicate[T])
	}
	if _, exists := rs.checks[field]; !exists {
		rs.order = append(rs.order, field)
	}
	rs.checks[field] = check
}

// Get returns the predicate registered for field.
func (rs Rules[T, F]) Get(field F) (Predicate[T], bool) {
	check, ok := rs.checks[field]
	return check, ok
}

// Fields returns registered field names in insertion order.
func (rs Rules[T, F]) Fields() []F {
	fields := make([]F, len(rs.order))
	copy(fields, rs.order)
	return fields
}

// Len returns the number of registered fields.
func (rs Rules[T, F]) Len() int {
	return len(rs.order)
}

func (rs Rules[T, F]) clone() Rules[T, F] {
	out := Rules[T, F]{
		order:  rs.Fields(),
		checks: make(map[F]Predicate[T], len(rs.checks)),
	}
	for field, check := range rs.checks {
		out.checks[field] = check
	}
	return out
}

// Messages maps field names to the message reported when the field's rule fails.
type Messages[F ~string] map[F]string

// MessagesFrom converts an untyped table, such as one loaded from a file,
// into a typed message table.
func MessagesFrom[F ~string](table map[string]string) Messages[F] {
	out := make(Messages[F], len(table))
	for field, msg := range table {
		out[F(field)] = msg
	}
	return out
}

func (m Messages[F]) clone() Messages[F] {
	out := make(Messages[F], len(m))
	for field, msg := range m {
		out[field] = msg
	}
	return out
}
