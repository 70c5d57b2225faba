// Package log provides a logging abstraction for stowctl components.
//
// This package defines a Logger interface implemented by a zerolog adapter
// for production, a no-op logger for quiet operation, and an in-memory
// recorder for tests.
//
// # Usage
//
// Use the zerolog adapter for console output:
//
//	logger := log.NewZerologAdapter()
//
// Or JSON output to an arbitrary writer:
//
//	logger := log.NewJSONAdapter(os.Stderr)
//
// Implement the Logger interface to integrate with other logging
// infrastructure.
package log
