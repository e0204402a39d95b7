// Package clientip resolves the originating client address of an HTTP
// request behind reverse proxies.
//
// A Resolver checks its proxy headers in order and returns the first valid
// address, falling back to RemoteAddr. X-Forwarded-For style lists use their
// first valid entry. The default header order is:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For
//  4. X-Real-IP
//
// Only list headers your proxies overwrite; anything else is client
// controlled.
//
//	r.Use(clientip.Middleware(clientip.NewResolver()))
//	ip := clientip.FromContext(req.Context())
//
// GetIP never fails: when nothing parses it returns an empty string.
package clientip
