// Package httputil provides shared HTTP response/request utilities for
// handlers.
//
// Every handler file should use these helpers instead of writing raw
// http.ResponseWriter calls. This keeps the {message, reason} envelope and
// status-code conventions identical across endpoints.
package httputil
