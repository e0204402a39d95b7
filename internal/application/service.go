package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/predicate"
	"github.com/dmitrymomot/formrules/pkg/sanitizer"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Service validates and stores applications.
type Service struct {
	validator *validator.Validator[Form, Field]
	store     Store
	log       *slog.Logger
	now       func() time.Time
	hashCost  int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source for CreatedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHashCost sets the bcrypt cost. Values outside bcrypt's range fall back
// to bcrypt.DefaultCost.
func WithHashCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		s.hashCost = cost
	}
}

func NewService(v *validator.Validator[Form, Field], store Store, opts ...ServiceOption) *Service {
	s := &Service{
		validator: v,
		store:     store,
		log:       logger.Noop(),
		now:       time.Now,
		hashCost:  bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check validates form without storing it.
func (s *Service) Check(ctx context.Context, form Form) validator.Result[Field] {
	res := s.validator.Validate(form)
	s.log.DebugContext(ctx, "application checked",
		logger.Component("application"),
		logger.Valid(res.Valid),
		logger.Fields(res.Failed...),
	)
	return res
}

// Submit validates form and stores it. Invalid forms yield
// validator.ValidationErrors; duplicates yield ErrAlreadySubmitted.
func (s *Service) Submit(ctx context.Context, form Form) (Application, error) {
	res := s.Check(ctx, form)
	if !res.Valid {
		return Application{}, res.Err()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.hashCost)
	if err != nil {
		return Application{}, errors.Join(ErrHashPassword, err)
	}

	app := s.build(form, hash)
	if err := s.store.Save(ctx, app); err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			return Application{}, err
		}
		s.log.ErrorContext(ctx, "failed to store application",
			logger.Component("application"),
			logger.Error(err),
		)
		return Application{}, errors.Join(ErrStoreFailed, err)
	}

	s.log.InfoContext(ctx, "application submitted",
		logger.Component("application"),
		slog.String("application_id", app.ID.String()),
	)
	return app, nil
}

// Get returns a stored application.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Application, error) {
	app, err := s.store.Get(ctx, id)
	if err != nil {
		return Application{}, fmt.Errorf("get application %s: %w", id, err)
	}
	return app, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *Service) VerifyPassword(app Application, password string) bool {
	return bcrypt.CompareHashAndPassword(app.PasswordHash, []byte(password)) == nil
}

var cleanText = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

// build assumes form already passed validation.
func (s *Service) build(form Form, hash []byte) Application {
	birth, _ := predicate.ParseDate(form.BirthDate)
	experience, _ := predicate.ParseNumber(form.Experience)

	specialty := cleanText(form.Specialty)
	if predicate.NotBlank(form.CustomSpecialty) {
		specialty = cleanText(form.CustomSpecialty)
	}

	var photo string
	if name := form.photoName(); name != "" {
		photo = sanitizer.SanitizeFilename(name)
	}

	return Application{
		ID:           uuid.New(),
		Name:         cleanText(form.Name),
		Email:        sanitizer.NormalizeEmail(form.Email),
		Phone:        sanitizer.NormalizePhone(form.Phone),
		BirthDate:    birth,
		Photo:        photo,
		Specialty:    specialty,
		Experience:   experience,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
}
