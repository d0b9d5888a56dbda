package models

// Version — версии продукта; активных может быть несколько,
// уникальность на уровне схемы не навязывается
type Version struct {
	Base
	ProductID     uint `gorm:"index;not null"`
	VersionNumber int  `gorm:"not null"`
	VersionName   string
	IsActive      bool `gorm:"not null;default:false"`
}
