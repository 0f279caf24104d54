package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDCookie carries the acting user's id. There is no real
	// authentication: any value in the cookie is trusted as-is.
	UserIDCookie = "userId"

	cookieMaxAge = 30 * 24 * 60 * 60
)

// FakeLogin resolves the acting user from the userId cookie and stores it
// in the request context under "user_id". Requests without a (valid)
// cookie get one force-set to the demo user, so every request downstream
// always carries an acting user id. A real deployment would replace this
// with session-backed authentication.
func FakeLogin(demoUserID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := demoUserID

		raw, err := c.Cookie(UserIDCookie)
		if err == nil {
			if parsed, perr := strconv.ParseInt(raw, 10, 64); perr == nil && parsed > 0 {
				userID = parsed
			}
		}

		if err != nil || userID == demoUserID {
			c.SetCookie(UserIDCookie, strconv.FormatInt(demoUserID, 10), cookieMaxAge, "/", "", false, false)
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
