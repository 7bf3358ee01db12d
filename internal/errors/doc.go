// Package errors provides error handling conventions for the snapdir CLI.
//
// It defines sentinel errors for configuration failures, an ExitError
// type carrying a process exit code and optional suggestion, and
// re-exports the cockroachdb/errors constructors so the rest of the
// code base uses a single errors import.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// main unwraps [ExitError] to choose the process exit code:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Fprintln(os.Stderr, exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
