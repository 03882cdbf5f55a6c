package controllers

import (
	"net/http"

	"gin-items/dto"
	"gin-items/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	logger  *zap.Logger
}

func NewAuthController(service services.IAuthService, logger *zap.Logger) IAuthController {
	return &AuthController{service: service, logger: logger}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}

	user, err := c.service.Register(ctx.Request.Context(), input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Login はJSONとフォーム（OAuth2 password grant）の両方を受け付ける
func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}

	identifier := input.Identifier()
	if identifier == "" {
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{sourceBody, "username"},
			Msg:  "Field required",
			Type: "missing",
		})
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), identifier, input.Password)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
