package controllers

import (
	"net/http"

	"gin-items/constants"
	"gin-items/dto"
	"gin-items/models"
	"gin-items/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IUserController interface {
	Me(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
	logger  *zap.Logger
}

func NewUserController(service services.IUserService, logger *zap.Logger) IUserController {
	return &UserController{service: service, logger: logger}
}

func (c *UserController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) UpdateMe(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.UpdateMeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}
	if input.IsEmpty() {
		writeEmptyPatch(ctx)
		return
	}

	updated, err := c.service.UpdateMe(ctx.Request.Context(), user, input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// 以下はSuperuserOnlyの後ろにマウントする

func (c *UserController) FindAll(ctx *gin.Context) {
	var page dto.PageQuery
	if err := ctx.ShouldBindQuery(&page); err != nil {
		writeBindError(ctx, sourceQuery, err)
		return
	}

	users, count, err := c.service.FindAll(ctx.Request.Context(), page)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse[models.User]{Data: users, Count: count})
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}

	user, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) FindById(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.service.FindById(ctx.Request.Context(), userID)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}
	if input.IsEmpty() {
		writeEmptyPatch(ctx)
		return
	}

	user, err := c.service.Update(ctx.Request.Context(), userID, input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	actor, ok := currentUser(ctx)
	if !ok {
		return
	}

	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), actor, userID); err != nil {
		writeError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MsgUserDeleted})
}
