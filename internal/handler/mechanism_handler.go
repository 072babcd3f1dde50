package handler

import (
	"net/http"
	"strconv"
	"strings"

	"mechshare/internal/dto"
	"mechshare/internal/middleware"
	"mechshare/internal/service"
	"mechshare/internal/utils"

	"github.com/gin-gonic/gin"
)

// MechanismHandler 机构帖子处理器
type MechanismHandler struct {
	mechService *service.MechanismService
}

// NewMechanismHandler 创建机构帖子处理器
func NewMechanismHandler(mechService *service.MechanismService) *MechanismHandler {
	return &MechanismHandler{
		mechService: mechService,
	}
}

// List 获取已发布的机构帖子列表
// 支持分类过滤、搜索、排序;携带page参数时返回分页结构
// @Summary 机构帖子列表
// @Tags 机构
// @Param categories query string false "分类ID,逗号分隔"
// @Param search query string false "搜索关键词"
// @Param sort query string false "排序: newest/oldest/popular/views/comments"
// @Param page query int false "页码(1起始)"
// @Param per_page query int false "每页数量"
// @Success 200 {object} utils.Response
// @Router /api/mechanisms [get]
func (h *MechanismHandler) List(c *gin.Context) {
	ms, err := h.mechService.ListPublished()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	params := parseFeedParams(c)
	filtered := service.QueryFeed(ms, dto.FeedParams{
		Categories: params.Categories,
		Search:     params.Search,
		Sort:       params.Sort,
	})

	if !params.Paginated {
		utils.SuccessResponse(c, filtered)
		return
	}

	page := service.Paginate(filtered, params.Page, params.PerPage)
	utils.PaginatedResponse(c, page, int64(len(filtered)), params.Page, params.PerPage)
}

// Get 获取机构帖子详情
// @Summary 机构帖子详情
// @Tags 机构
// @Param id path string true "帖子ID"
// @Success 200 {object} utils.Response
// @Router /api/mechanisms/{id} [get]
func (h *MechanismHandler) Get(c *gin.Context) {
	m, err := h.mechService.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, m)
}

// Create 创建机构帖子
// @Summary 创建机构帖子
// @Tags 机构
// @Security BearerAuth
// @Param request body dto.CreateMechanismRequest true "帖子字段"
// @Success 201 {object} utils.Response
// @Router /api/mechanisms [post]
func (h *MechanismHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.CreateMechanismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	m, err := h.mechService.Create(userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, m)
}

// Update 更新机构帖子,仅限所有者
// @Summary 更新机构帖子
// @Tags 机构
// @Security BearerAuth
// @Param id path string true "帖子ID"
// @Param request body dto.UpdateMechanismRequest true "变更字段"
// @Success 200 {object} utils.Response
// @Router /api/mechanisms/{id} [put]
func (h *MechanismHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.UpdateMechanismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	m, err := h.mechService.Update(c.Param("id"), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, m)
}

// Delete 删除机构帖子,仅限所有者
// @Summary 删除机构帖子
// @Tags 机构
// @Security BearerAuth
// @Param id path string true "帖子ID"
// @Success 204
// @Router /api/mechanisms/{id} [delete]
func (h *MechanismHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	if err := h.mechService.Delete(c.Param("id"), userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Like 点赞
// @Summary 点赞机构帖子
// @Tags 机构
// @Security BearerAuth
// @Param id path string true "帖子ID"
// @Success 200 {object} utils.Response
// @Router /api/mechanisms/{id}/like [post]
func (h *MechanismHandler) Like(c *gin.Context) {
	m, err := h.mechService.Like(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, m)
}

// ListMine 获取当前用户的全部帖子(含未发布)
// @Summary 我的机构帖子
// @Tags 机构
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/me/mechanisms [get]
func (h *MechanismHandler) ListMine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	ms, err := h.mechService.ListByUser(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, ms)
}

// parseFeedParams 解析列表查询参数
func parseFeedParams(c *gin.Context) dto.FeedParams {
	params := dto.FeedParams{
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", service.SortNewest),
	}

	if raw := c.Query("categories"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				params.Categories = append(params.Categories, id)
			}
		}
	}

	if rawPage := c.Query("page"); rawPage != "" {
		params.Paginated = true
		params.Page, _ = strconv.Atoi(rawPage)
		if params.Page < 1 {
			params.Page = 1
		}

		params.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
		if params.PerPage < 1 || params.PerPage > 100 {
			params.PerPage = 20
		}
	}

	return params
}
