// Package predicate provides small, pure value checks used to build
// record-level validation rules.
//
// The helpers take plain values (strings, numbers, times) and return a bool
// or a parsed value, so application code can wrap them in closures over its
// own record type and combine them with validator.All and validator.Some:
//
//	hasCapital := func(f Form) bool { return predicate.HasUpper(f.Password) }
//	longEnough := func(f Form) bool { return predicate.MinLen(f.Password, 10) }
//	rule := validator.All(longEnough, hasCapital)
//
// Length checks count Unicode characters after NFC normalization, so a
// composed "é" and a decomposed "e"+"◌́" have the same length. Case-insensitive
// membership uses Unicode case folding.
package predicate
