// Package model holds the request and response types of the API.
//
// Request types implement validation.Validatable; their `validate` tags are
// the structural contract of each endpoint.
package model
