// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls the
// service layer and writes the JSON result; errors are left to the global
// error handler. It also serves the system endpoints (root, health, docs).
package handler
