package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/services"
)

const userContextKey = "currentUser"

// ResolveUser loads the profile named by the X-User-ID header, falling
// back to the default profile. There is no authentication; the header
// only selects between local profiles.
func ResolveUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *models.User
		var err error

		if id := c.GetHeader("X-User-ID"); id != "" {
			user, err = users.GetByID(id)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		if user == nil {
			user, err = users.Default()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the profile resolved for this request.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(userContextKey).(*models.User)
}
