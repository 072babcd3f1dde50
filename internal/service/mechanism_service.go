package service

import (
	"errors"
	"fmt"

	"mechshare/internal/apperr"
	"mechshare/internal/dto"
	"mechshare/internal/models"
	"mechshare/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MechanismService 机构帖子服务
type MechanismService struct {
	mechRepo     *repository.MechanismRepository
	categoryRepo *repository.CategoryRepository
}

// NewMechanismService 创建机构帖子服务
func NewMechanismService(mechRepo *repository.MechanismRepository, categoryRepo *repository.CategoryRepository) *MechanismService {
	return &MechanismService{
		mechRepo:     mechRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPublished 获取已发布的帖子,按创建时间倒序
func (s *MechanismService) ListPublished() ([]models.Mechanism, error) {
	return s.mechRepo.ListPublished()
}

// ListByUser 获取用户自己的全部帖子(含未发布)
func (s *MechanismService) ListByUser(userID string) ([]models.Mechanism, error) {
	return s.mechRepo.ListByUserID(userID)
}

// Get 获取帖子详情,同时累加浏览计数
func (s *MechanismService) Get(id string) (*models.Mechanism, error) {
	m, err := s.mechRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	if err := s.mechRepo.IncrementViews(id); err != nil {
		return nil, fmt.Errorf("更新浏览计数失败: %w", err)
	}
	m.ViewsCount++

	return m, nil
}

// Create 创建帖子
// categories未提供时不建立关联,提供时原子替换为该集合
func (s *MechanismService) Create(callerID string, req *dto.CreateMechanismRequest) (*models.Mechanism, error) {
	if req.Title == "" {
		return nil, apperr.NewValidation("标题不能为空")
	}
	if req.Description == "" {
		return nil, apperr.NewValidation("描述不能为空")
	}
	if req.FileURL == "" {
		return nil, apperr.NewValidation("文件地址不能为空")
	}
	if req.Duration != nil && *req.Duration < 0 {
		return nil, apperr.NewValidation("时长不能为负数")
	}
	if req.ReliabilityLevel != nil && !models.IsValidReliabilityLevel(*req.ReliabilityLevel) {
		return nil, apperr.NewValidation("无效的信赖性等级: %s", *req.ReliabilityLevel)
	}

	m := &models.Mechanism{
		ID:               uuid.NewString(),
		UserID:           callerID,
		Title:            req.Title,
		Description:      req.Description,
		FileURL:          req.FileURL,
		ThumbnailURL:     req.ThumbnailURL,
		ReliabilityLevel: req.ReliabilityLevel,
	}
	if req.Duration != nil {
		m.Duration = *req.Duration
	}
	if req.IsPublished != nil {
		m.IsPublished = *req.IsPublished
	}

	categories, replace, err := s.resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	if err := s.mechRepo.Create(m, categories, replace); err != nil {
		return nil, fmt.Errorf("创建帖子失败: %w", err)
	}

	return m, nil
}

// Update 更新帖子,仅限所有者
// 未提供的字段保持原值;thumbnail_url/reliability_level显式null表示清空;
// categories空数组表示清空关联,未提供表示不变
func (s *MechanismService) Update(id string, callerID string, req *dto.UpdateMechanismRequest) (*models.Mechanism, error) {
	m, err := s.mechRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	// 所有者检查在每次变更时执行,不做缓存
	if m.UserID != callerID {
		return nil, apperr.ErrForbidden
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperr.NewValidation("标题不能为空")
		}
		m.Title = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, apperr.NewValidation("描述不能为空")
		}
		m.Description = *req.Description
	}
	if req.FileURL != nil {
		if *req.FileURL == "" {
			return nil, apperr.NewValidation("文件地址不能为空")
		}
		m.FileURL = *req.FileURL
	}
	if req.ThumbnailURL.Present {
		if req.ThumbnailURL.Valid {
			v := req.ThumbnailURL.Value
			m.ThumbnailURL = &v
		} else {
			m.ThumbnailURL = nil
		}
	}
	if req.ReliabilityLevel.Present {
		if req.ReliabilityLevel.Valid {
			if !models.IsValidReliabilityLevel(req.ReliabilityLevel.Value) {
				return nil, apperr.NewValidation("无效的信赖性等级: %s", req.ReliabilityLevel.Value)
			}
			v := req.ReliabilityLevel.Value
			m.ReliabilityLevel = &v
		} else {
			m.ReliabilityLevel = nil
		}
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, apperr.NewValidation("时长不能为负数")
		}
		m.Duration = *req.Duration
	}
	if req.IsPublished != nil {
		m.IsPublished = *req.IsPublished
	}

	categories, replace, err := s.resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	if err := s.mechRepo.Update(m, categories, replace); err != nil {
		return nil, fmt.Errorf("更新帖子失败: %w", err)
	}

	return m, nil
}

// Delete 删除帖子,仅限所有者,硬删除
func (s *MechanismService) Delete(id string, callerID string) error {
	m, err := s.mechRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("获取帖子失败: %w", err)
	}

	if m.UserID != callerID {
		return apperr.ErrForbidden
	}

	if err := s.mechRepo.Delete(m); err != nil {
		return fmt.Errorf("删除帖子失败: %w", err)
	}

	return nil
}

// Like 点赞计数自增
func (s *MechanismService) Like(id string) (*models.Mechanism, error) {
	m, err := s.mechRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	if err := s.mechRepo.IncrementLikes(id); err != nil {
		return nil, fmt.Errorf("更新点赞计数失败: %w", err)
	}
	m.LikesCount++

	return m, nil
}

// resolveCategories 将分类ID集合解析为分类记录
// ids为nil表示未提供分类,不触发关联替换
func (s *MechanismService) resolveCategories(ids *[]string) ([]models.Category, bool, error) {
	if ids == nil {
		return nil, false, nil
	}

	categories, err := s.categoryRepo.GetByIDs(*ids)
	if err != nil {
		return nil, false, fmt.Errorf("查询分类失败: %w", err)
	}
	if len(categories) != len(*ids) {
		return nil, false, apperr.NewValidation("包含不存在的分类")
	}
	return categories, true, nil
}
