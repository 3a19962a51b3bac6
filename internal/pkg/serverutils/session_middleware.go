package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-Id"

// SessionMiddleware resolves the caller's session id. Auth itself lives
// outside this service; the session id only scopes recent-query history
// and the usage log. A missing header gets a fresh id, echoed back so
// the client can keep it.
func SessionMiddleware(ctx *fiber.Ctx) error {
	sessionId := ctx.Get(SessionHeader)
	if sessionId == "" {
		sessionId = uuid.NewString()
	}
	ctx.Locals("session_id", sessionId)
	ctx.Set(SessionHeader, sessionId)
	return ctx.Next()
}
