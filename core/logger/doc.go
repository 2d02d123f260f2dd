// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Components never reach for a global logger;
// they receive an instance at construction.
//
// # Run Correlation
//
// Every reconciliation run is tagged with a unique run ID. The WithRunID
// helper attaches that ID to the logger so all entries belonging to one run
// can be grouped when auditing which run touched which rows.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("run started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("upsert failed", zap.Error(err))
package logger
