package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           string    `gorm:"primarykey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:100" json:"display_name"`
	Bio          string    `gorm:"type:text" json:"bio"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联
	Mechanisms []Mechanism `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"mechanisms,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
