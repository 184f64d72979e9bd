// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID attaches the request's RayID to log entries. WithRequest additionally attaches
// the acting user resolved by the actor middleware, so edits to the catalog can be traced
// back to the operator that submitted them.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRequest(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
