package service

import (
	"fmt"

	"mechshare/internal/apperr"
	"mechshare/internal/dto"
	"mechshare/internal/models"
	"mechshare/internal/repository"

	"github.com/google/uuid"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取分类列表,按名称升序
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Create 创建分类
// 名称全局唯一,用户创建的分类is_system固定为false
func (s *CategoryService) Create(callerID string, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperr.NewValidation("分类名称不能为空")
	}

	exists, err := s.categoryRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("检查分类名称失败: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("同名分类已存在: %w", apperr.ErrConflict)
	}

	category := &models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   &callerID,
		IsSystem:    false,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}

	return category, nil
}
