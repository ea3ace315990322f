// Package api handles incoming HTTP requests, request validation, and response
// formatting. It acts as an adapter between external clients and the service
// layer, exposing agency services, users, and roles as JSON resources.
//
// Handlers never expose raw error text. Errors are mapped to a status code and
// a safe message (see MapErrorToStatusCode and GetSafeErrorMessage), and the
// redacted details are logged with the request's trace ID.
package api
