package middleware

import "github.com/gin-gonic/gin"

// actorKey is the key used to store the acting client's ID in the Gin context.
const actorKey = contextKey("actorID")

// ActorHeader is the request header carrying the acting client's opaque id.
// There is no authentication model; the header exists so audit fields record
// which device/session performed a write.
const ActorHeader = "X-Actor-ID"

// DefaultActor is recorded when the header is absent.
const DefaultActor = "anonymous"

// ActorMiddleware stores the X-Actor-ID header value in the Gin context.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting client's id from the Gin context.
func GetActorFromContext(c *gin.Context) string {
	if actor, ok := c.Get(string(actorKey)); ok {
		if s, ok := actor.(string); ok && s != "" {
			return s
		}
	}
	return DefaultActor
}
