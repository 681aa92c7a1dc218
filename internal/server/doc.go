// Package server runs the HTTP transport of silabos-admin.
//
// It binds the route registry through the HTTP handler, serves requests and
// shuts down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
