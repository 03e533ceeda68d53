// Package utils exposes the ambient helpers shared by commit-files commands.
//
// It houses ConfigurationLoader and LoggerFactory abstractions that integrate
// Viper, environment variables, and zap logging for the CLI, plus a
// FlushingWriter that keeps progress output visible as it is written.
package utils
