// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated requests from the handler, records usage on the
// shared counter store, performs the operation and calls repository or
// provider methods. Errors meant for the client are *errs.HTTPError; any
// other error becomes a 500 at the HTTP boundary.
package service
