// Package http implements the HTTP transport layer of silabos-admin.
//
// Controllers declare their routes from init functions into the package
// route registry; [Handler.Init] binds them once onto a chi router, wrapping
// every route that lists allowed categories with the authorization guard.
// Tracing, access logging, CORS and request timeouts are handled here before
// requests are forwarded to the service layer. Every response body is the
// JSON envelope of [models.Response].
package http
