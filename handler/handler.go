package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc handles one decoded request of type R and returns the response
// to render.
//
//	submit := func(ctx handler.Context, form application.Form) handler.Response {
//		app, err := svc.Submit(ctx, form)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(app, handler.WithJSONStatus(http.StatusCreated))
//	}
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes status, headers and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes r into v, which is always a pointer to the request value.
// Returning ErrSkipBinder lets the next binder try.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding, nil-response and render failures.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator given to Wrap is the
// outermost one.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// Wrap adapts h to net/http.
//
//	r.Post("/", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, Form](binder.Auto()),
//		handler.WithErrorHandler[handler.Context, Form](handler.NewErrorHandler(log)),
//	))
//
// Without WithContextFactory, C must be satisfied by the value NewContext
// returns; Wrap panics otherwise.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{errorHandler: renderError[C]}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.contextFactory == nil {
		cfg.contextFactory = defaultContextFactory[C]()
	}

	next := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		next = cfg.decorators[i](next)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		req, err := bindRequest[R](r, cfg.binders)
		if err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		resp := next(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func bindRequest[R any](r *http.Request, binders []Bind) (R, error) {
	var req R
	for _, bind := range binders {
		err := bind(r, &req)
		switch {
		case err == nil, errors.Is(err, ErrSkipBinder):
		default:
			return req, err
		}
	}
	return req, nil
}

func defaultContextFactory[C Context]() func(http.ResponseWriter, *http.Request) C {
	if _, ok := any(NewContext(nil, nil)).(C); !ok {
		panic("handler: custom context type requires WithContextFactory")
	}
	return func(w http.ResponseWriter, r *http.Request) C {
		return any(NewContext(w, r)).(C)
	}
}

// renderError is the fallback ErrorHandler: it renders err as a JSON error
// and does not log.
func renderError[C Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if rerr := JSONError(err).Render(w, ctx.Request()); rerr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
