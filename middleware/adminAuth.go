package middleware

import (
	"context"

	"lovelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker is satisfied by user.UserService.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin lets the request through only when the authenticated caller's
// stored user has role "admin". It must run after Authenticate; missing
// claims are treated like an unknown user.
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			utils.RequestLogger(c).Warn("RequireAdmin: no decoded claims, is Authenticate missing from the chain?")
			utils.RespondError(c, utils.ErrForbidden)
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), claims.Email())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if !isAdmin {
			utils.RequestLogger(c).Debug("RequireAdmin: caller is not an admin", zap.String("email", claims.Email()))
			utils.RespondError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireSelf rejects the request unless the path parameter param equals
// the authenticated caller's email.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Email() == "" || c.Param(param) != claims.Email() {
			utils.RespondError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}
