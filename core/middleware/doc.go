// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - auth: Implements API key validation to protect endpoints.
//   - actor: Resolves the acting user from a signed bearer token (or a trusted
//     header in development) so catalog writes can record their owner.
//
// These middleware components are registered globally in the start command.
package middleware
