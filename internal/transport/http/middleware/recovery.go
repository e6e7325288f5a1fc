package middleware

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare/internal/transport/http/response"
)

// Recovery logs the panic with its stack through zap and answers the
// generic JSON 500 so the error envelope stays uniform.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, err any) {
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		c.Abort()
	})
}
