// Package application implements the mission application form: its field
// rules, message table, submission service and HTTP routes.
//
// The rules are composed from pkg/predicate checks with validator.All and
// validator.Some and bound into a validator.Validator by NewValidator.
// Thresholds (age range, password length and so on) come from Config, which
// is populated from the environment.
//
//	v := application.NewValidator(cfg, application.DefaultMessages(cfg), time.Now)
//	svc := application.NewService(v, application.NewMemoryStore())
//	r.Mount("/applications", application.Routes(svc, log))
package application
