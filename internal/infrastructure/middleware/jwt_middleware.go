package middleware

import (
	"context"
	"net/http"
	"strings"

	"cadastro_api/pkg/constants"
	"cadastro_api/pkg/errorx"
	"cadastro_api/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionVerifier rejects token ids replaced by a later login
type SessionVerifier interface {
	VerificarSessao(ctx context.Context, usuarioID uint, tokenID string) error
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}

// JWTAuth validates the Bearer token and stores the user in the context
func JWTAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "faca login primeiro")
			return
		}

		if !strings.HasPrefix(authHeader, jwt.Prefix) {
			abortUnauthorized(c, "use o formato Bearer <token>")
			return
		}

		claims, err := jwt.ParseToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "token expirado ou invalido")
			return
		}

		if err := verifier.VerificarSessao(c.Request.Context(), claims.UsuarioID, claims.TokenID); err != nil {
			if errorx.GetCode(err) != errorx.CodeUnauthorized {
				zap.L().Error("verify session", zap.Uint("usuario_id", claims.UsuarioID), zap.Error(err))
			}
			abortUnauthorized(c, "sessao expirada, faca login novamente")
			return
		}

		c.Set(constants.CTX_USUARIO_ID, claims.UsuarioID)
		c.Set(constants.CTX_USUARIO_NOME, claims.Subject)
		c.Next()
	}
}
