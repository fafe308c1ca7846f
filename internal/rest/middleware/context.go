package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/types"
)

// ContextMiddleware copies the identifying request headers into the request
// context so services and logs can reach them without touching gin.
func ContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		requestID := c.GetHeader(types.HeaderRequestID)
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}
		ctx = types.SetRequestID(ctx, requestID)

		if tenantID := c.GetHeader(types.HeaderTenantID); tenantID != "" {
			ctx = types.SetTenantID(ctx, tenantID)
			c.Set("tenant_id", tenantID)
		}
		if userID := c.GetHeader(types.HeaderUserID); userID != "" {
			ctx = types.SetUserID(ctx, userID)
			c.Set("user_id", userID)
		}

		c.Header(types.HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
