// Package auth provides the authentication strategy provider used by the
// route registrar.
//
// Strategies are registered by name on an [Authenticator]. For each auth
// route the registrar asks for a middleware with [Authenticator.Authenticate]:
// on failure the client is redirected to the failure location (or gets 401),
// on success the user is stored in the request context and the client is
// either redirected to the success location or passed on to the next
// handler. [Authenticator.Session] builds a non-rejecting middleware that
// populates the current user for every request that carries credentials.
package auth
