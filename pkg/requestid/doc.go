// Package requestid assigns a request identifier to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response header. LoggerExtractor makes pkg/logger add it to log records.
package requestid
