package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/binder"
)

type payload struct {
	Name    string                `json:"name" form:"name"`
	Age     int                   `json:"age" form:"age"`
	Score   *float64              `json:"score" form:"score"`
	Agree   bool                  `json:"agree" form:"agree"`
	Tags    []string              `json:"tags" form:"tags"`
	Ignored string                `json:"-" form:"-"`
	Photo   *multipart.FileHeader `json:"-" file:"photo"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann","age":30,"tags":["a","b"]}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var p payload
		require.NoError(t, binder.JSON()(req, &p))
		assert.Equal(t, "Ann", p.Name)
		assert.Equal(t, 30, p.Age)
		assert.Equal(t, []string{"a", "b"}, p.Tags)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nope":1}`))
		req.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(req, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		req.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(req, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		req.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(req, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")

		var p payload
		assert.ErrorIs(t, binder.JSON()(req, &p), binder.ErrUnsupportedMediaType)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		var p payload
		assert.ErrorIs(t, binder.JSON()(req, &p), binder.ErrMissingContentType)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{
			"name":    {"Bob"},
			"age":     {"41"},
			"score":   {"9.5"},
			"agree":   {"on"},
			"tags":    {"x", "y"},
			"Ignored": {"zzz"},
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var p payload
		require.NoError(t, binder.Form()(req, &p))
		assert.Equal(t, "Bob", p.Name)
		assert.Equal(t, 41, p.Age)
		require.NotNil(t, p.Score)
		assert.InDelta(t, 9.5, *p.Score, 0.0001)
		assert.True(t, p.Agree)
		assert.Equal(t, []string{"x", "y"}, p.Tags)
		assert.Empty(t, p.Ignored)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("age=old"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var p payload
		assert.ErrorIs(t, binder.Form()(req, &p), binder.ErrFailedToParseForm)
	})

	t.Run("multipart with file", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("name", "Cleo"))
		fw, err := mw.CreateFormFile("photo", "../../etc/me.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var p payload
		require.NoError(t, binder.Form()(req, &p))
		assert.Equal(t, "Cleo", p.Name)
		require.NotNil(t, p.Photo)
		assert.Equal(t, "me.png", p.Photo.Filename)
		assert.EqualValues(t, len("png-bytes"), p.Photo.Size)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.ErrorIs(t, binder.Form()(req, payload{}), binder.ErrInvalidTarget)
	})
}

func TestAuto(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"J"}`))
		req.Header.Set("Content-Type", "application/json")

		var p payload
		require.NoError(t, binder.Auto()(req, &p))
		assert.Equal(t, "J", p.Name)
	})

	t.Run("form", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=F"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var p payload
		require.NoError(t, binder.Auto()(req, &p))
		assert.Equal(t, "F", p.Name)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/csv")

		var p payload
		assert.ErrorIs(t, binder.Auto()(req, &p), binder.ErrUnsupportedMediaType)
	})
}
