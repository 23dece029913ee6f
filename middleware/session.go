package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/store"
)

const sessionContextKey = "storefrontSession"

// SessionMiddleware attaches the caller's storefront session to the
// request context, minting a session cookie on first contact. The
// session carries the cart, checkout and auth stores; creating it is
// the only point where persisted auth data is hydrated.
func SessionMiddleware(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(config.SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(
				config.SessionCookieName,
				sessionID,
				int(config.SessionTTL().Seconds()),
				"/",
				"",
				false,
				true, // HttpOnly
			)
		}

		sess := manager.Get(c.Request.Context(), sessionID)
		c.Set(sessionContextKey, sess)

		c.Next()
	}
}

// GetSession returns the request's storefront session. The session
// middleware always runs first on storefront routes, so a missing
// session is a wiring bug, not a client error.
func GetSession(c *gin.Context) (*store.Session, bool) {
	raw, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := raw.(*store.Session)
	return sess, ok
}
