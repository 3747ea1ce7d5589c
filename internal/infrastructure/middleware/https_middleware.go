package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler redirects plain HTTP requests to https://host:port
func TlsHandler(host string, port int) gin.HandlerFunc {
	// built once, not per request
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		// on redirect Process has already written the response and returns an error
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Debug("tls redirect", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
