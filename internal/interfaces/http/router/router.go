package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RootRegistrar registers routes directly on the engine, outside the API
// prefix. Used for the service root, schema export, and diagnostics.
type RootRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiPrefix  string
	registrars []RouteRegistrar
	roots      []RootRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIPrefix overrides the default "/api" prefix
func WithAPIPrefix(prefix string) RouterOption {
	return func(r *Router) {
		r.apiPrefix = prefix
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiPrefix:  "/api",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// RegisterRoot adds a RootRegistrar to be registered at the engine root
func (r *Router) RegisterRoot(registrar RootRegistrar) *Router {
	r.roots = append(r.roots, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group(r.apiPrefix)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	for _, registrar := range r.roots {
		registrar.RegisterRoutes(r.engine)
	}
}
