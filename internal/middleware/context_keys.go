package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// callerIDKey stores the authenticated caller (the JWT subject).
const callerIDKey = contextKey("callerID")

// AnonymousCaller is recorded as the actor when authentication is disabled.
const AnonymousCaller = "anonymous"

// GetCallerIDFromContext retrieves the authenticated caller ID from the Gin context.
// It returns the caller ID and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(callerIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return CallerIDFromCtx(c.Request.Context())
}

// CallerIDFromCtx retrieves the caller ID from a standard context.
func CallerIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerIDKey).(string)
	return id, ok && id != ""
}

// WithCallerID returns a copy of ctx carrying the caller ID.
func WithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerIDKey, callerID)
}

// ActorFromCtx returns the caller ID or AnonymousCaller.
func ActorFromCtx(ctx context.Context) string {
	if id, ok := CallerIDFromCtx(ctx); ok {
		return id
	}
	return AnonymousCaller
}
