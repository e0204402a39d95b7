package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Auto binds JSON or form bodies depending on the Content-Type header.
func Auto() func(r *http.Request, v any) error {
	jsonBinder, formBinder := JSON(), Form()
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		switch mediaType {
		case "application/json":
			return jsonBinder(r, v)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}

func mediaTypeOf(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
	}
	return mediaType, nil
}
