package http

import "github.com/gofiber/fiber/v2"

// CORS headers expected by the legacy web clients of the corrector and
// snapshotter endpoints. Preflight must answer 200 with an empty body, which
// rules out the stock cors middleware (it answers 204).
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// CORSMiddleware sets the cross-origin headers on every response and
// short-circuits OPTIONS preflight with an empty 200.
func CORSMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		if c.Method() == fiber.MethodOptions {
			// SendStatus would fill the empty body with the status text.
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
