// Package https_server builds the gin engine: middleware, CORS and routes.
package https_server

import (
	"cadastro_api/internal/config"
	"cadastro_api/internal/handler"
	"cadastro_api/internal/infrastructure/logger"
	"cadastro_api/internal/infrastructure/middleware"
	"cadastro_api/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init returns the configured engine.
// Order: logger, recovery, CORS, optional TLS redirect, routes.
func Init(handlers *handler.Handlers, verifier middleware.SessionVerifier, conf *config.Config) *gin.Engine {
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// gin.New, not gin.Default: the zap middleware replaces gin's own
	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	// the form may be served from any origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// off when a proxy in front terminates TLS
	if conf.TLSConfig.Enable {
		engine.Use(middleware.TlsHandler(conf.TLSConfig.Host, conf.TLSConfig.Port))
	}

	rt := router.NewRouter(handlers, verifier)
	rt.RegisterRoutes(engine)

	return engine
}
