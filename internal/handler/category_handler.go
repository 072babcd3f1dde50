package handler

import (
	"mechshare/internal/dto"
	"mechshare/internal/middleware"
	"mechshare/internal/service"
	"mechshare/internal/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List 获取分类列表,按名称升序
// @Summary 分类列表
// @Tags 分类
// @Success 200 {object} utils.Response
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// Create 创建分类
// @Summary 创建分类
// @Tags 分类
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "分类字段"
// @Success 201 {object} utils.Response
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}
