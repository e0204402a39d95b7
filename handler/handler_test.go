package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/handler"
	"github.com/dmitrymomot/formrules/pkg/binder"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name" form:"name"`
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := func(ctx handler.Context, req greetRequest) handler.Response {
		if req.Name == "" {
			errs := validator.ValidationErrors{}
			errs.Add(validator.ValidationError{Field: "name", Message: "Name is required."})
			return handler.JSONError(errs)
		}
		return handler.JSON(map[string]string{"hello": req.Name})
	}

	h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](binder.Auto()))

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		body := decodeBody(t, w)
		assert.Equal(t, map[string]any{"hello": "Ann"}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeBody(t, w)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, map[string][]string{"name": {"Name is required."}}, body.Error.Details)
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		require.NotNil(t, body.Error)
		assert.Equal(t, "bad_request", body.Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`x`))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestWrapSkipBinderAndDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	skip := func(*http.Request, any) error { return handler.ErrSkipBinder }
	fill := func(_ *http.Request, v any) error {
		v.(*greetRequest).Name = "filled"
		return nil
	}

	var got string
	h := handler.Wrap(
		func(ctx handler.Context, req greetRequest) handler.Response {
			got = req.Name
			return handler.Empty()
		},
		handler.WithBinders[handler.Context, greetRequest](skip, fill),
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "filled", got)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestWrapNilResponse(t *testing.T) {
	t.Parallel()

	var captured error
	h := handler.Wrap(
		func(handler.Context, greetRequest) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, greetRequest](func(_ handler.Context, err error) {
			captured = err
		}),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, captured, handler.ErrNilResponse)
}

func TestErrorToDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", handler.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped http error", errors.Join(errors.New("ctx"), handler.ErrConflict), http.StatusConflict, "conflict"},
		{"json binder", binder.ErrFailedToParseJSON, http.StatusBadRequest, "bad_request"},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"unknown", errors.New("db is down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, detail := handler.ErrorToDetail(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.NotContains(t, detail.Message, "db is down")
		})
	}
}

func TestJSONResponses(t *testing.T) {
	t.Parallel()

	t.Run("status and meta", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		resp := handler.JSON("ok", handler.WithJSONStatus(http.StatusCreated), handler.WithJSONMeta(map[string]any{"n": 1}))
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body.Data)
		assert.Equal(t, map[string]any{"n": float64(1)}, body.Meta)
	})

	t.Run("raw", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSONRaw(map[string]bool{"valid": true}).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.JSONEq(t, `{"valid":true}`, w.Body.String())
	})

	t.Run("error value passed to JSON", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON(handler.ErrBadRequest).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty with status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.EmptyWithStatus(http.StatusAccepted).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())
	eh := handler.NewErrorHandler(log)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications", nil)
	eh(handler.NewContext(w, req), handler.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	require.NotNil(t, body.Error)
	assert.Equal(t, "not_found", body.Error.Code)

	assert.Contains(t, buf.String(), `"msg":"request error"`)
	assert.Contains(t, buf.String(), `"status_code":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

type tenantContext struct {
	handler.Context
	tenant string
}

func TestWrapContextFactory(t *testing.T) {
	t.Parallel()

	t.Run("custom context", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(
			func(ctx tenantContext, _ struct{}) handler.Response {
				return handler.JSON(map[string]string{"tenant": ctx.tenant})
			},
			handler.WithContextFactory[tenantContext, struct{}](func(w http.ResponseWriter, r *http.Request) tenantContext {
				return tenantContext{Context: handler.NewContext(w, r), tenant: r.Header.Get("X-Tenant")}
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant", "acme")
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"tenant": "acme"}, decodeBody(t, w).Data)
	})

	t.Run("custom context without factory", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			handler.Wrap(func(tenantContext, struct{}) handler.Response { return handler.Empty() })
		})
	})
}
