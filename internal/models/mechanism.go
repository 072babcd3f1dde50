package models

import (
	"time"
)

// 信赖性等级的固定取值集合
var ReliabilityLevels = []string{
	"妄想モデル",
	"実験により一部支持",
	"社内複数人が支持",
	"顧客含めて定番認識化",
	"教科書に記載",
}

// IsValidReliabilityLevel 判断信赖性等级是否在固定集合内
func IsValidReliabilityLevel(level string) bool {
	for _, l := range ReliabilityLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Mechanism 机构帖子模型
type Mechanism struct {
	ID               string    `gorm:"primarykey;size:36" json:"id"`
	UserID           string    `gorm:"size:36;not null;index" json:"user_id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	FileURL          string    `gorm:"size:255" json:"file_url"`
	ThumbnailURL     *string   `gorm:"size:255" json:"thumbnail_url"`
	Duration         int       `gorm:"default:0" json:"duration"`
	ReliabilityLevel *string   `gorm:"size:50" json:"reliability_level"`
	IsPublished      bool      `gorm:"default:false;not null" json:"is_published"`
	LikesCount       int       `gorm:"default:0;not null" json:"likes_count"`
	ViewsCount       int       `gorm:"default:0;not null" json:"views_count"`
	CommentsCount    int       `gorm:"default:0;not null" json:"comments_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// 关联
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Categories []Category `gorm:"many2many:mechanism_categories;constraint:OnDelete:CASCADE" json:"categories"`
}

// TableName 指定表名
func (Mechanism) TableName() string {
	return "mechanisms"
}

// HasCategory 判断是否关联指定分类
func (m *Mechanism) HasCategory(categoryID string) bool {
	for _, c := range m.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
