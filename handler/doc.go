// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a bound request value and returns a Response.
// Wrap turns it into an http.HandlerFunc, running binders, decorators and
// the error handler around it:
//
//	func submit(ctx handler.Context, req Form) handler.Response {
//		if err := svc.Submit(ctx, req); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(req, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/forms", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, Form](binder.Auto()),
//	))
//
// # Responses
//
//	handler.JSON(data)                       // 200 with {"data": ...}
//	handler.JSON(data, WithJSONStatus(201))  // custom status
//	handler.JSONRaw(v)                       // v encoded without envelope
//	handler.JSONError(err)                   // {"error": {...}} with derived status
//	handler.Empty()                          // 204
//
// # Error Handling
//
// ErrorToDetail maps errors to responses. validator.ValidationErrors become
// 422 with code "validation_error" and a field → messages map in details.
// HTTPError values keep their own status and key. Binder failures map to 400
// or 415. Everything else is a 500 that does not leak the error text.
//
// NewErrorHandler adds structured logging of each failure, tagged with the
// request ID from pkg/requestid.
package handler
