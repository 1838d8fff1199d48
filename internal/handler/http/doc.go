// Package http turns declarative route descriptors into HTTP handlers that
// dispatch every request to the action bus.
//
// The [Registrar] validates all routes, composes each route's middleware
// chain (open, secure or authenticated) and registers one handler per
// method with a [router.Table]. The handler it registers is the dispatch
// translator: it builds the action payload from the request, calls the bus
// exactly once and answers with an error, a redirect, the action result, or
// nothing at all when the route leaves the response to the action.
//
// The package also holds the named middleware that route files can refer
// to: request tracing, access logging, Prometheus metrics, compression,
// body integrity checks, body pre-parsing, cache suppression and real-IP
// resolution.
package http
