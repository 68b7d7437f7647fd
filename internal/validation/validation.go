// Package validation binds and validates request payloads.
//
// Struct tags (go-playground/validator) declare the structural rules of each
// request. Any binding or tag failure is reported as a 422 with one entry per
// offending field, keyed by the field's JSON name.
package validation
