package models

import "time"

type Resume struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"userId"`
	Title      string    `gorm:"not null" json:"title"`
	FileName   string    `gorm:"not null" json:"fileName"`
	UploadDate time.Time `gorm:"default:now()" json:"uploadDate"`
	IsDefault  bool      `gorm:"default:false" json:"isDefault"`
}
