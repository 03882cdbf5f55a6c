package controllers

import (
	"net/http"

	"gin-items/constants"
	"gin-items/dto"
	"gin-items/middlewares"
	"gin-items/models"
	"gin-items/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
	logger  *zap.Logger
}

func NewItemController(service services.IItemService, logger *zap.Logger) IItemController {
	return &ItemController{service: service, logger: logger}
}

// currentUser is a guard for handlers mounted behind AuthMiddleware.
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.Header("WWW-Authenticate", "Bearer")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: constants.ErrNotAuthenticated})
	}
	return user, ok
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var page dto.PageQuery
	if err := ctx.ShouldBindQuery(&page); err != nil {
		writeBindError(ctx, sourceQuery, err)
		return
	}

	items, count, err := c.service.FindAll(ctx.Request.Context(), user, page)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse[models.Item]{Data: items, Count: count})
}

func (c *ItemController) FindById(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	item, err := c.service.FindById(ctx.Request.Context(), user, itemID)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (c *ItemController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), user, input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newItem)
}

func (c *ItemController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		writeBindError(ctx, sourceBody, err)
		return
	}
	if input.IsEmpty() {
		writeEmptyPatch(ctx)
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), user, itemID, input)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedItem)
}

func (c *ItemController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	deletedItem, err := c.service.Delete(ctx.Request.Context(), user, itemID)
	if err != nil {
		writeError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedItem)
}
