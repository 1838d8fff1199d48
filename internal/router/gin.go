package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinTable registers routes on a gin engine.
//
// gin middleware has a different shape, so global middlewares are prepended
// to every route chain and to the fallback instead of being installed with
// engine.Use.
type GinTable struct {
	engine *gin.Engine
	global []Middleware
}

// NewGin returns a route table backed by engine.
func NewGin(engine *gin.Engine, global ...Middleware) *GinTable {
	return &GinTable{engine: engine, global: global}
}

func (t *GinTable) Route(method, path string, chain []Middleware, h http.Handler) {
	middlewares := make([]Middleware, 0, len(t.global)+len(chain))
	middlewares = append(middlewares, t.global...)
	middlewares = append(middlewares, chain...)

	t.engine.Handle(method, ginPath(path), ginHandler(Chain(h, middlewares...)))
}

func (t *GinTable) Fallback(h http.Handler) {
	handler := ginHandler(Chain(h, t.global...))
	t.engine.NoRoute(handler)
	t.engine.NoMethod(handler)
}

func (t *GinTable) Handler() http.Handler {
	return t.engine
}

func ginHandler(h http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		h.ServeHTTP(c.Writer, c.Request.WithContext(WithParams(c.Request.Context(), params)))
	}
}
