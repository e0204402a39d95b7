// Package binder decodes HTTP request bodies into Go structs.
//
// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// using `form:"name"` tags for values and `file:"name"` tags for uploads
// (*multipart.FileHeader or []*multipart.FileHeader). JSON decodes
// application/json bodies strictly: unknown fields and trailing data are
// rejected. Auto picks one of the two from the Content-Type header.
//
// Every binder has the signature func(*http.Request, any) error so it plugs
// into handler.WithBinder. Failures wrap one of the package errors; check
// them with errors.Is.
package binder
