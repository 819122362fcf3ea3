// Package apperrors defines the error type used across the service. It keeps
// the standard error interface and adds chaining, HTTP status codes, and
// message replacement so a storage or validation failure can be annotated on
// its way to the operation boundary.
package apperrors

// Error is the application error interface. Methods return Error so calls can
// be chained; every derived error stays matchable with errors.Is against its
// ancestors.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // derives a fresh error from the current one as template
	Msg(msg string) Error                  // replaces the message, wrapping the original
	MsgErr(msg string, err ...error) Error // replaces the message and wraps extra errors
	Err(err ...error) Error                // attaches additional causes
	SetExpandError(bool) Error             // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error               // sets the HTTP status code
	StatusCode() int                       // returns the HTTP status code
	ErrorAll() string                      // message including wrapped errors when expansion is on
	UnwrapAll() []error                    // all wrapped errors
}
