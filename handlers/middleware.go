package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

const userIDKey = "userID"

// RequireUser resolves the acting user from the X-User-ID header and
// aborts with an authentication error when the header is missing or
// does not resolve to a known user. Token verification is handled by
// the identity provider in front of this API.
func RequireUser(userStore services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-ID")
		if id == "" {
			utils.HandleError(c, utils.NewAuthenticationError("not authenticated"))
			c.Abort()
			return
		}

		user, err := userStore.GetUser(id)
		if err != nil {
			utils.HandleError(c, utils.NewInternalError(err.Error()))
			c.Abort()
			return
		}
		if user == nil {
			utils.HandleError(c, utils.NewAuthenticationError("not authenticated"))
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// CurrentUserID returns the acting user id resolved by RequireUser.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
