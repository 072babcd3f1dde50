package models

import (
	"time"
)

// Category 分类模型
type Category struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedBy   *string   `gorm:"size:36" json:"created_by"`
	IsSystem    bool      `gorm:"default:false;not null" json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
