package validator

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/formrules/pkg/async"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	parallel bool
}

// WithParallel evaluates field rules concurrently.
// Results are merged by field in rule-set order, so the outcome matches
// sequential evaluation. A panicking predicate is re-raised on the goroutine
// calling Validate once all rules have finished; with several panics, the
// first field in rule-set order wins.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// Validator binds a rule set and a message table.
// It is immutable after construction and safe for concurrent use.
type Validator[T any, F ~string] struct {
	rules    Rules[T, F]
	messages Messages[F]
	parallel bool
}

// New creates a Validator from the given rules and messages.
// Both tables are copied; later changes to the arguments do not affect it.
// Fields without a message are accepted: when their rule fails they are
// reported in Result.Failed but have no entry in Result.Errors.
func New[T any, F ~string](rules Rules[T, F], messages Messages[F], opts ...Option) *Validator[T, F] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator[T, F]{
		rules:    rules.clone(),
		messages: messages.clone(),
		parallel: o.parallel,
	}
}

// NewStrict works like New but requires a message for every ruled field.
// It returns ErrMissingMessage listing the uncovered fields otherwise.
func NewStrict[T any, F ~string](rules Rules[T, F], messages Messages[F], opts ...Option) (*Validator[T, F], error) {
	var missing []F
	for _, field := range rules.order {
		if _, ok := messages[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingMessage, missing)
	}
	return New(rules, messages, opts...), nil
}

// MustNew works like NewStrict but panics on misconfiguration.
func MustNew[T any, F ~string](rules Rules[T, F], messages Messages[F], opts ...Option) *Validator[T, F] {
	v, err := NewStrict(rules, messages, opts...)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

// Validate evaluates every field rule against record.
// All rules are evaluated even after a failure.
func (v *Validator[T, F]) Validate(record T) Result[F] {
	res := Result[F]{
		Valid:  true,
		Errors: make(map[F]string),
	}

	outcomes := v.evaluate(record)
	for i, field := range v.rules.order {
		if outcomes[i] {
			continue
		}
		res.Valid = false
		res.Failed = append(res.Failed, field)
		if msg, ok := v.messages[field]; ok {
			res.Errors[field] = msg
		}
	}

	return res
}

// Func returns Validate as a plain function value.
func (v *Validator[T, F]) Func() func(T) Result[F] {
	return v.Validate
}

// Fields returns the validated field names in rule-set order.
func (v *Validator[T, F]) Fields() []F {
	return v.rules.Fields()
}

// evaluate returns per-field outcomes indexed like v.rules.order.
// A nil predicate counts as passing.
func (v *Validator[T, F]) evaluate(record T) []bool {
	outcomes := make([]bool, len(v.rules.order))

	if !v.parallel || len(v.rules.order) < 2 {
		for i, field := range v.rules.order {
			check := v.rules.checks[field]
			outcomes[i] = check == nil || check(record)
		}
		return outcomes
	}

	futures := make([]*async.Future[bool], len(v.rules.order))
	for i, field := range v.rules.order {
		check := v.rules.checks[field]
		futures[i] = async.Async(context.Background(), record, func(_ context.Context, rec T) (ok bool, err error) {
			defer func() {
				if p := recover(); p != nil {
					err = predicatePanic{value: p}
				}
			}()
			return check == nil || check(rec), nil
		})
	}

	results, err := async.WaitAll(futures...)
	var p predicatePanic
	if errors.As(err, &p) {
		panic(p.value)
	}
	copy(outcomes, results)
	return outcomes
}

// predicatePanic carries a predicate panic from a worker goroutine back to
// the caller of Validate.
type predicatePanic struct {
	value any
}

func (p predicatePanic) Error() string {
	return fmt.Sprintf("validator: predicate panicked: %v", p.value)
}
