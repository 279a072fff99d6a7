package http

import "github.com/gofiber/fiber/v2"

const (
	actorHeader   = "X-Actor-Id"
	actorLocalKey = "actor_id"
)

// ActorMiddleware resuelve el actor de la petición: el header X-Actor-Id si
// viene, si no el owner por defecto de la configuración. Es el reemplazo
// explícito del owner quemado en código mientras no exista capa de auth.
func ActorMiddleware(defaultOwnerID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := c.Get(actorHeader)
		if actor == "" {
			actor = defaultOwnerID
		}
		c.Locals(actorLocalKey, actor)
		return c.Next()
	}
}

// GetActorID devuelve el actor resuelto para la petición actual.
func GetActorID(c *fiber.Ctx) string {
	if v, ok := c.Locals(actorLocalKey).(string); ok {
		return v
	}
	return ""
}
