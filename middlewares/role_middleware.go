package middlewares

import (
	"net/http"

	"gin-items/constants"

	"github.com/gin-gonic/gin"
)

// SuperuserOnly はスーパーユーザー以外を403で拒否する
// AuthMiddlewareの後に使用することを想定
func SuperuserOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.Header("WWW-Authenticate", "Bearer")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
			return
		}

		// トークンではなくDBから取得した最新のフラグで判定する
		if !user.IsSuperuser {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": constants.ErrNotEnoughPrivileges})
			return
		}

		ctx.Next()
	}
}
