package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

const sessionUserKey = "SessionUser"

// AuthMiddleware validates the session token and resolves the current user.
// The token's role claim only selects the cache key; the stored user record
// is what authorization decisions run on.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetSessionUser(c.Request.Context(), domain.Role(claims.Role), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if user.IsBlocked {
			response.Error(c, http.StatusForbidden, "Your account has been blocked. Contact support.", nil)
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Error(c, http.StatusUnauthorized, "Session expired. Please log in again.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(sessionUserKey, user)

		c.Next()
	}
}

// CurrentUser returns the authenticated user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
