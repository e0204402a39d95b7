package validator

// Predicate reports whether a record satisfies a rule.
// Predicates must be pure: no side effects and no mutation of the record.
type Predicate[T any] func(record T) bool

// All returns a predicate that passes only when every rule passes.
// Evaluation stops at the first failing rule. With no rules it always passes.
func All[T any](rules ...Predicate[T]) Predicate[T] {
	return func(record T) bool {
		for _, rule := range rules {
			if rule == nil || !rule(record) {
				return false
			}
		}
		return true
	}
}

// Some returns a predicate that passes when at least one rule passes.
// Evaluation stops at the first passing rule. With no rules it never passes.
func Some[T any](rules ...Predicate[T]) Predicate[T] {
	return func(record T) bool {
		for _, rule := range rules {
			if rule != nil && rule(record) {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate. A nil rule never passes, so its negation always does.
func Not[T any](rule Predicate[T]) Predicate[T] {
	return func(record T) bool {
		return rule == nil || !rule(record)
	}
}
