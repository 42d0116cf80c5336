package middleware

import (
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopperContext is the HTTP counterpart of ContextInterceptor. The session
// comes from the X-Session-ID header.
func ShopperContext(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := auth.ShopperContext{
			SessionID: c.GetHeader(auth.SessionIDHeader),
			Language:  c.GetHeader(auth.LanguageHeader),
		}
		c.Request = c.Request.WithContext(auth.WithShopper(c.Request.Context(), sc))

		start := time.Now()
		c.Next()

		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("session_id", sc.SessionID),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
