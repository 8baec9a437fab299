package models

import "time"

type Asset struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	RoomID      string    `json:"roomId" gorm:"type:varchar(36);not null;index"`
	Status      string    `json:"status" gorm:"type:varchar(32);not null"`
	DateAdded   string    `json:"dateAdded" gorm:"type:varchar(10)"`
	AssetTypeID string    `json:"assetTypeId,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AllModels liệt kê các model cần AutoMigrate
func AllModels() []interface{} {
	return []interface{}{&Room{}, &Asset{}, &User{}, &AssetType{}}
}
