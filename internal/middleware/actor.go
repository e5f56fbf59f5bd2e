package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

const actorContextKey = "actor_context"

// Gateway-provided identity headers. Authentication itself happens
// upstream; this layer only records who acted for the audit trail.
const (
	userIDHeader   = "X-User-Id"
	userNameHeader = "X-User-Name"
)

// Actor returns a gin middleware that captures the request's actor context
// (identity headers, client IP, method, path) for audit logging.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorContextKey, domain.ActorContext{
			UserID:    c.GetHeader(userIDHeader),
			UserName:  c.GetHeader(userNameHeader),
			IPAddress: c.ClientIP(),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
		})
		c.Next()
	}
}

// GetActor extracts the actor context set by Actor. When the middleware did
// not run, it falls back to rebuilding the context from the request so
// audit entries never lose the transport facts.
func GetActor(c *gin.Context) domain.ActorContext {
	if v, exists := c.Get(actorContextKey); exists {
		if actor, ok := v.(domain.ActorContext); ok {
			return actor
		}
	}
	return domain.ActorContext{
		IPAddress: c.ClientIP(),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
	}
}
