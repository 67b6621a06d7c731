package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment has no HTTP surface of its own; rows only leave the table through
// the cascade when the owning task is deleted.
type Comment struct {
	ID        string         `gorm:"type:char(32);primarykey" json:"id"`
	TaskID    string         `gorm:"type:char(32);not null;index" json:"taskId"`
	UserID    string         `gorm:"type:char(32);not null" json:"userId"`
	Content   string         `gorm:"type:text" json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
