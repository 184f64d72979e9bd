package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// JWTSecret verifies bearer tokens carrying the acting user id.
	// When empty, the actor is read from the X-Actor-ID header instead.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// BodyLimitMB caps request bodies, which bounds image uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"10"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 10 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
