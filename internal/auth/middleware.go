package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edumodules/internal/authz"
	"edumodules/internal/repository"
)

// ActorContextKey is the echo context key the resolved actor is stored under.
const ActorContextKey = "actor"

// LoadActor returns middleware that resolves the authenticated actor from
// the claims parsed by the JWT middleware. Role flags are read fresh from
// the user record so a revoked role takes effect before the token expires.
func LoadActor(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "account disabled")
			}

			c.Set(ActorContextKey, authz.Actor{
				ID:          user.ID,
				IsModerator: user.IsModerator,
				IsSuperuser: user.IsSuperuser,
			})
			return next(c)
		}
	}
}

// ActorFromContext returns the actor resolved by LoadActor.
func ActorFromContext(c echo.Context) (authz.Actor, bool) {
	actor, ok := c.Get(ActorContextKey).(authz.Actor)
	return actor, ok
}
