package middleware

import (
	"strings"

	"lovelink/utils"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is where Authenticate stores the decoded token claims.
const ClaimsContextKey = "decoded"

// TokenVerifier is satisfied by *utils.TokenManager.
type TokenVerifier interface {
	Verify(token string) (utils.Claims, error)
}

// Authenticate requires an "Authorization: Bearer <token>" header carrying a
// valid token and exposes its claims to downstream handlers.
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.ErrMissingToken)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.RespondError(c, utils.ErrMissingToken)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims set by Authenticate, if any.
func ClaimsFromContext(c *gin.Context) (utils.Claims, bool) {
	v, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(utils.Claims)
	return claims, ok
}
