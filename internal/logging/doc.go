// Package logging provides structured logging for the snapdir CLI using slog.
//
// The package supports both text and JSON output formats, a MultiHandler
// for teeing records into the configured log file, and helpers for
// testing. The configured log level is restricted to ERROR, INFO and
// DEBUG; [LevelFromName] rejects anything else.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
