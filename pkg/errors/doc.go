// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Collection never surfaces these errors to the caller of the aggregator.
// They classify why a source produced no result so the reason can be logged
// and counted.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeQueryUnavailable,
//	    "command not found",
//	    execErr,
//	    map[string]any{
//	        "command": "dmidecode",
//	    },
//	)
package errors
