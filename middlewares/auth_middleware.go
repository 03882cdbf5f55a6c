package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"gin-items/constants"
	"gin-items/models"
	"gin-items/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(authService services.IAuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(ctx, constants.ErrNotAuthenticated)
			return
		}

		user, err := authService.GetUserFromToken(ctx.Request.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				abortUnauthorized(ctx, constants.ErrInvalidCredentialsJWT)
			case errors.Is(err, services.ErrInactiveUser):
				ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInactiveUser})
			default:
				logger.Error("Failed to resolve token user", zap.Error(err))
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
			}
			return
		}

		ctx.Set(constants.ContextUserKey, user)

		ctx.Next()
	}
}

// bearerToken extracts the credentials from an "Authorization: Bearer <token>" header.
// スキーム名は大文字小文字を区別しない
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(ctx *gin.Context, detail string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// CurrentUser returns the user AuthMiddleware stored on the context.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
