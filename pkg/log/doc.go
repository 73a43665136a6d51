// Package log provides the logging abstraction used across xfer.
//
// Library packages accept a Logger through options and default to a no-op
// logger, so embedding applications decide where output goes.
//
// # Usage
//
// Wrap zerolog:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or build a console logger from a level name, as the CLI does:
//
//	logger, err := log.NewConsoleAdapter(os.Stderr, "debug")
//
// Use the no-op logger in tests:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
