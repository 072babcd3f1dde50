package handler

import (
	"mechshare/internal/service"
	"mechshare/internal/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler 文件上传处理器
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler 创建文件上传处理器
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload 上传文件
// @Summary 上传文件
// @Tags 上传
// @Security BearerAuth
// @Accept multipart/form-data
// @Param file formData file true "上传文件"
// @Success 200 {object} utils.Response{data=dto.UploadResponse}
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "没有上传文件")
		return
	}

	resp, err := h.uploadService.Store(fileHeader)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "文件上传成功", resp)
}
