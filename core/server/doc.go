// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key that gates every route,
// the secret used to verify actor tokens, and the request body limit.
//
// This package is used by core/config to embed server settings and by the start
// command to configure Fiber and the middleware chain.
package server
