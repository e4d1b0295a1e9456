// Package client implements the authenticated transport to the DocHub API.
//
// The transport is an interceptor chain over a plain Doer: a request stage
// attaches the bearer token when a session exists, and a response stage
// reacts to authorization failures by clearing the session and forcing
// navigation to the login screen. HTTPClient builds the concrete REST calls
// on top of that chain; all endpoints, including multipart uploads and the
// root-relative binary download, pass through the same stages.
package client
