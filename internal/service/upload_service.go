package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"mechshare/internal/apperr"
	"mechshare/internal/config"
	"mechshare/internal/dto"

	"github.com/google/uuid"
)

// UploadService 文件接收服务
// 将上传文件落盘并返回可访问的URL,每次调用无状态
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建文件接收服务
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// Store 校验并保存上传文件
// 超出大小上限或类型不在允许列表内时拒绝
func (s *UploadService) Store(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if fileHeader.Size > s.cfg.Upload.MaxSizeBytes {
		return nil, apperr.ErrTooLarge
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !s.isAllowedType(mimeType) {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUnsupportedMediaType, mimeType)
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	// 存储文件名使用UUID,避免与原始文件名冲突
	storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(s.cfg.Upload.Dir, storedName)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("写入文件失败: %w", err)
	}

	return &dto.UploadResponse{
		URL: s.cfg.Upload.PublicPrefix + "/" + storedName,
		// 媒体时长提取未实现,统一返回0
		Duration:     0,
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		Mimetype:     mimeType,
	}, nil
}

// isAllowedType 检查MIME类型是否在允许列表内
func (s *UploadService) isAllowedType(mimeType string) bool {
	for _, t := range s.cfg.Upload.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
