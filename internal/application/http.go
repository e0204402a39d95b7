package application

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formrules/handler"
	"github.com/dmitrymomot/formrules/pkg/binder"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

type submitResponse struct {
	ID uuid.UUID `json:"id"`
}

type getRequest struct{}

// Routes returns the application endpoints, meant to be mounted under
// /applications:
//
//	POST /          submit a form; 201 with the new id or 422 with field errors
//	POST /validate  dry run; 200 with {"valid": bool, "errors": {...}}
//	GET  /{id}      fetch an accepted application
//
// submitMiddlewares wrap the submit route only, e.g. a rate limiter.
func Routes(svc *Service, log *slog.Logger, submitMiddlewares ...func(http.Handler) http.Handler) http.Handler {
	if log == nil {
		log = logger.Noop()
	}
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()

	r.With(submitMiddlewares...).Post("/", handler.Wrap(submitHandler(svc),
		handler.WithBinder[handler.Context, Form](binder.Auto()),
		handler.WithErrorHandler[handler.Context, Form](errorHandler),
		handler.WithDecorators(logRequest[Form](log, "submit")),
	))
	r.Post("/validate", handler.Wrap(validateHandler(svc),
		handler.WithBinder[handler.Context, Form](binder.Auto()),
		handler.WithErrorHandler[handler.Context, Form](errorHandler),
		handler.WithDecorators(logRequest[Form](log, "validate")),
	))
	r.Get("/{id}", handler.Wrap(getHandler(svc),
		handler.WithErrorHandler[handler.Context, getRequest](errorHandler),
	))

	return r
}

// Handle returns Routes(s) using the service logger.
func (s *Service) Handle() http.Handler {
	return Routes(s, s.log)
}

// TooManyRequests renders the JSON 429 body used when submissions are
// rate limited.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
}

func submitHandler(svc *Service) handler.HandlerFunc[handler.Context, Form] {
	return func(ctx handler.Context, form Form) handler.Response {
		app, err := svc.Submit(ctx, form)
		switch {
		case err == nil:
			return handler.JSON(submitResponse{ID: app.ID}, handler.WithJSONStatus(http.StatusCreated))
		case errors.Is(err, ErrAlreadySubmitted):
			return handler.JSONError(handler.ErrConflict)
		default:
			return handler.JSONError(err)
		}
	}
}

// checkResponse is the dry-run body. Failed also lists fields that have no
// message and therefore no entry in Errors.
type checkResponse struct {
	Valid  bool             `json:"valid"`
	Errors map[Field]string `json:"errors"`
	Failed []Field          `json:"failed"`
}

func validateHandler(svc *Service) handler.HandlerFunc[handler.Context, Form] {
	return func(ctx handler.Context, form Form) handler.Response {
		res := svc.Check(ctx, form)
		failed := res.Failed
		if failed == nil {
			failed = []Field{}
		}
		return handler.JSONRaw(checkResponse{Valid: res.Valid, Errors: res.Errors, Failed: failed})
	}
}

func getHandler(svc *Service) handler.HandlerFunc[handler.Context, getRequest] {
	return func(ctx handler.Context, _ getRequest) handler.Response {
		id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
		if err != nil {
			return handler.JSONError(handler.ErrNotFound)
		}
		app, err := svc.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return handler.JSONError(handler.ErrNotFound)
		}
		if err != nil {
			return handler.JSONError(err)
		}
		return handler.JSON(app)
	}
}

func logRequest[R any](log *slog.Logger, op string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.InfoContext(ctx, "application request handled",
				logger.Component("application"),
				slog.String("operation", op),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
