package repository

import (
	"mechshare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MechanismRepository 机构帖子数据访问层
type MechanismRepository struct {
	db *gorm.DB
}

// NewMechanismRepository 创建机构帖子Repository
func NewMechanismRepository(db *gorm.DB) *MechanismRepository {
	return &MechanismRepository{db: db}
}

// Create 创建机构帖子
// replaceCategories为true时在同一事务内替换分类关联,避免写入撕裂
func (r *MechanismRepository) Create(m *models.Mechanism, categories []models.Category, replaceCategories bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		if replaceCategories {
			if err := tx.Model(m).Association("Categories").Replace(&categories); err != nil {
				return err
			}
		}
		m.Categories = categories
		return nil
	})
}

// Update 更新机构帖子,分类替换与行更新在同一事务内完成
func (r *MechanismRepository) Update(m *models.Mechanism, categories []models.Category, replaceCategories bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return err
		}
		if replaceCategories {
			if err := tx.Model(m).Association("Categories").Replace(&categories); err != nil {
				return err
			}
			m.Categories = categories
		}
		return nil
	})
}

// Delete 硬删除机构帖子及其分类关联
func (r *MechanismRepository) Delete(m *models.Mechanism) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}

// GetByID 根据ID获取机构帖子
func (r *MechanismRepository) GetByID(id string) (*models.Mechanism, error) {
	var m models.Mechanism
	err := r.db.Preload("Categories").First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListPublished 获取已发布的机构帖子,默认按创建时间倒序
func (r *MechanismRepository) ListPublished() ([]models.Mechanism, error) {
	var ms []models.Mechanism
	err := r.db.Preload("Categories").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

// ListByUserID 获取用户的全部机构帖子(含未发布)
func (r *MechanismRepository) ListByUserID(userID string) ([]models.Mechanism, error) {
	var ms []models.Mechanism
	err := r.db.Preload("Categories").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

// IncrementViews 浏览计数自增
// 使用UpdateColumn避免触碰updated_at,浏览不属于内容变更
func (r *MechanismRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Mechanism{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// IncrementLikes 点赞计数自增
func (r *MechanismRepository) IncrementLikes(id string) error {
	return r.db.Model(&models.Mechanism{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}
