package router

import (
	"cadastro_api/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerCadastroRoutes the public endpoint the form posts to
func (rt *Router) registerCadastroRoutes(r *gin.Engine) {
	r.POST("/cadastro", rt.handlers.Usuario.Cadastrar)
}

func (rt *Router) registerUsuarioRoutes(r *gin.Engine) {
	h := rt.handlers.Usuario

	// public
	r.GET("/usuarios", h.Listar)
	r.POST("/usuarios/login", h.Logar)

	// bearer token
	auth := r.Group("/usuarios")
	auth.Use(middleware.JWTAuth(rt.verifier))
	{
		auth.POST("", h.Criar)
		auth.PUT("", h.Editar)
		auth.DELETE("/:id", h.Excluir)
	}
}

func (rt *Router) registerHelloRoutes(r *gin.Engine) {
	r.GET("/api/hello", rt.handlers.Hello.Hello)
}
