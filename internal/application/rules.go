package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/pkg/predicate"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// DefaultMessages returns the English message table with thresholds taken
// from cfg.
func DefaultMessages(cfg Config) validator.Messages[Field] {
	return validator.Messages[Field]{
		FieldName:       "Your name is required for this mission.",
		FieldEmail:      "Correct email format is user@example.com.",
		FieldPhone:      "Please, use only “+”, “-”, “(”, “)”, and a whitespace.",
		FieldBirthDate:  fmt.Sprintf("We require applicants to be between %d and %d years.", cfg.MinAge, cfg.MaxAge),
		FieldSpecialty:  fmt.Sprintf("Please, use up to %d characters to describe your specialty.", cfg.MaxSpecialtyLength),
		FieldExperience: fmt.Sprintf("For this mission, we search for experience %s+ years.", formatYears(cfg.MinExperienceYears)),
		FieldPassword:   fmt.Sprintf("Your password must be longer than %d characters and at most %d bytes, include a capital letter and a digit.", cfg.MinPasswordSize, MaxPasswordBytes),
	}
}

func formatYears(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// NewRules builds the field rules for cfg. now is consulted on every
// birth date check.
func NewRules(cfg Config, now func() time.Time) validator.Rules[Form, Field] {
	if now == nil {
		now = time.Now
	}

	name := func(f Form) bool { return predicate.NotBlank(f.Name) }
	email := func(f Form) bool { return strings.Contains(f.Email, "@") && strings.Contains(f.Email, ".") }

	international := func(f Form) bool { return strings.HasPrefix(f.Phone, "+") }
	safeChars := func(f Form) bool { return predicate.OnlyChars(f.Phone, "+-()") }

	validDate := func(f Form) bool {
		_, ok := predicate.ParseDate(f.BirthDate)
		return ok
	}
	allowedAge := func(f Form) bool {
		t, ok := predicate.ParseDate(f.BirthDate)
		return ok && predicate.InRange(predicate.YearsOf(t, now()), cfg.MinAge, cfg.MaxAge)
	}

	knownSpecialty := func(f Form) bool { return predicate.OneOfFold(f.Specialty, cfg.KnownSpecialties...) }
	validCustom := func(f Form) bool {
		return predicate.NotBlank(f.CustomSpecialty) && predicate.MaxLen(f.CustomSpecialty, cfg.MaxSpecialtyLength)
	}

	numberLike := func(f Form) bool { return predicate.IsNumberLike(f.Experience) }
	experienced := func(f Form) bool {
		years, ok := predicate.ParseNumber(f.Experience)
		return ok && years >= cfg.MinExperienceYears
	}

	longEnough := func(f Form) bool { return predicate.MinLen(f.Password, cfg.MinPasswordSize) }
	hashable := func(f Form) bool { return predicate.MaxBytes(f.Password, MaxPasswordBytes) }
	hasCapital := func(f Form) bool { return predicate.HasUpper(f.Password) }
	hasDigit := func(f Form) bool { return predicate.HasDigit(f.Password) }

	return validator.NewRules(
		validator.Rule[Form](FieldName, name),
		validator.Rule[Form](FieldEmail, email),
		validator.Rule(FieldPhone, validator.All[Form](international, safeChars)),
		validator.Rule(FieldBirthDate, validator.All[Form](validDate, allowedAge)),
		validator.Rule(FieldSpecialty, validator.Some[Form](knownSpecialty, validCustom)),
		validator.Rule(FieldExperience, validator.All[Form](numberLike, experienced)),
		validator.Rule(FieldPassword, validator.All[Form](longEnough, hashable, hasCapital, hasDigit)),
	)
}

// NewValidator binds the form rules to messages.
func NewValidator(cfg Config, messages validator.Messages[Field], now func() time.Time) *validator.Validator[Form, Field] {
	var opts []validator.Option
	if cfg.ParallelValidation {
		opts = append(opts, validator.WithParallel())
	}
	return validator.New(NewRules(cfg, now), messages, opts...)
}
