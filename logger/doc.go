// Package logger provides structured logging for the voice agent service
// using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "voice-agent").WithComponent("pipeline")
//	log.Info("transcription complete", logger.Fields("language", "es"))
//
// Loggers are passed by constructor injection; there is no package
// global.
package logger
