// Package errs defines the error envelope of the API.
//
// Every error that reaches a client is an *HTTPError: a status, a stable
// upper-case code, a message under the "error" key and, for validation
// failures, the offending fields.
package errs
