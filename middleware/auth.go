package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

const (
	USER_KEY = "user"

	LoginPath = "/auth/login/"
)

// LoadUser resolves the session cookie to a user and stashes it on the
// context. It never aborts; pages that need a user add RequireLogin.
func LoadUser(database db.Database, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId, err := c.Cookie(cookieName)
		if err != nil || sessionId == "" {
			return
		}
		session, err := database.GetSession(c, sessionId)
		if err != nil || session == nil || session.Expired(time.Now()) {
			return
		}
		user, err := database.GetUserById(c, session.UserId)
		if err != nil || user == nil {
			return
		}
		c.Set(USER_KEY, user)
	}
}

// RequireLogin redirects anonymous visitors to the login page with a `next`
// parameter pointing back at the original path.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUser(c) != nil {
			return
		}
		// next keeps its slashes; the login handler reads it verbatim
		c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.RequestURI())
		c.Abort()
	}
}

// GetUser returns nil for anonymous visitors.
func GetUser(c *gin.Context) *model.User {
	user, ok := c.Get(USER_KEY)
	if !ok {
		return nil
	}
	return user.(*model.User)
}

// MustGetUser is only valid behind RequireLogin.
func MustGetUser(c *gin.Context) *model.User {
	user, _ := c.Get(USER_KEY)
	return user.(*model.User)
}
