package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID          string         `gorm:"type:char(32);primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Description string         `gorm:"type:varchar(500)" json:"description"`
	CreatedBy   string         `gorm:"type:char(32);not null" json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Members  []TeamMember `gorm:"foreignKey:TeamID" json:"members"`
	Projects []Project    `gorm:"foreignKey:TeamID" json:"projects,omitempty"`
}
