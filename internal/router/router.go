// Package router registers the HTTP routes.
package router

import (
	"cadastro_api/internal/handler"
	"cadastro_api/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router holds what the route groups need
type Router struct {
	handlers *handler.Handlers
	verifier middleware.SessionVerifier
}

// NewRouter verifier backs the JWT middleware, usually the usuario service
func NewRouter(handlers *handler.Handlers, verifier middleware.SessionVerifier) *Router {
	return &Router{handlers: handlers, verifier: verifier}
}

// RegisterRoutes registers every route group on r
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerCadastroRoutes(r)
	rt.registerUsuarioRoutes(r)
	rt.registerHelloRoutes(r)
}
