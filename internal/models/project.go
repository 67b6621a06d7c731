package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
)

type Project struct {
	ID          string         `gorm:"type:char(32);primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Description string         `gorm:"type:varchar(1000)" json:"description"`
	TeamID      string         `gorm:"type:char(32);not null;index" json:"teamId"`
	CreatedBy   string         `gorm:"type:char(32);not null" json:"createdBy"`
	Status      ProjectStatus  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team  Team   `gorm:"foreignKey:TeamID" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"-"`
}
