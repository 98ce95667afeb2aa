package middleware

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware resolves the authenticated caller's role and rejects
// anything below admin. Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(TokenEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		role, err := users.ResolveRole(c.Request.Context(), email)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to resolve role", err.Error())
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "unauthorized user"})
			return
		}

		c.Next()
	}
}
