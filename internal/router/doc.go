// Package router adapts concrete HTTP routers to the narrow route table the
// registrar needs.
//
// Two engines are supported: go-chi/chi (the default) and gin-gonic/gin.
// Both accept ":name" and "{name}" path parameters and expose the matched
// values through [Params], so handlers never depend on the engine.
package router
