// Package validator provides a small, generic, declarative field-validation
// engine built from composable predicates.
//
// A Predicate is a pure function over a whole record. Predicates are combined
// with All (every rule must pass) and Some (any rule may pass) into one rule
// per field, registered in an ordered Rules set together with a Messages table,
// and bound into a reusable Validator with New. Applying the validator to a
// record yields a Result holding the overall validity flag and a field → message
// mapping for failing fields.
//
// # Architecture
//
// Field names are expressed as a caller-defined string type (for example
// `type Field string`) so the rule set, the message table and the result are
// keyed by the same finite enumeration and mismatches are caught at compile
// time. The package holds no global state; a Validator owns private copies of
// its configuration and is safe for concurrent use.
//
// Core building blocks:
//   - Predicate[T]        – pure boolean function over a record
//   - All, Some, Not      – rule combinators
//   - Rules[T, F]         – ordered field → predicate set
//   - Messages[F]         – field → message lookup table
//   - Validator[T, F]     – bound rules and messages
//   - Result[F]           – {Valid, Errors, Failed} produced per call
//   - ValidationErrors    – error form of a failing Result
//
// # Usage
//
//	type Field string
//
//	const (
//	    FieldName     Field = "name"
//	    FieldPassword Field = "password"
//	)
//
//	hasName := func(f SignupForm) bool { return f.Name != "" }
//	longEnough := func(f SignupForm) bool { return len(f.Password) >= 10 }
//	hasDigit := func(f SignupForm) bool { return strings.ContainsAny(f.Password, "0123456789") }
//
//	v := validator.New(
//	    validator.NewRules(
//	        validator.Rule(FieldName, hasName),
//	        validator.Rule(FieldPassword, validator.All(longEnough, hasDigit)),
//	    ),
//	    validator.Messages[Field]{
//	        FieldName:     "Your name is required.",
//	        FieldPassword: "Password must be 10+ characters and include a digit.",
//	    },
//	)
//
//	res := v.Validate(form)
//	if !res.Valid {
//	    // res.Errors[FieldPassword] == "Password must be ..."
//	}
//
// # Error Handling
//
// Validation failures are data, never errors: Validate cannot fail. A field
// whose rule fails but has no message is reported in Result.Failed and left
// out of Result.Errors. An empty rule set always yields a valid result.
// Callers wanting configuration checks use NewStrict, which rejects rules
// without a message with ErrMissingMessage. Result.Err converts a failing
// result into ValidationErrors for code paths that propagate errors.
//
// # Performance Considerations
//
// Evaluation is sequential by default. WithParallel evaluates field rules
// concurrently; the merged result is identical to sequential evaluation.
// For cheap predicates the sequential path is faster.
package validator
