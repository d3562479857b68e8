package middleware

import (
	"github.com/gin-gonic/gin"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/service"
)

const (
	SessionCookieName = "session"

	userContextKey = "current_user"
)

// SessionMiddleware resolves the session cookie to a user once per request
// and stores the result in the request context. Requests without a valid
// session simply proceed as anonymous.
func SessionMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil {
			user, err := sessions.Resolve(c.Request.Context(), token)
			if err == nil && user != nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// SetSessionCookie writes the signed session token to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, int(service.SessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie drops the session token, ending the session.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
