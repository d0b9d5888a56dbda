package models

// Blog — записи блога, в каталоге только читаются
type Blog struct {
	Base
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex"`
	Body        string `gorm:"type:text"`
	IsPublished bool   `gorm:"not null;default:true"`
	ViewsCount  int    `gorm:"not null;default:0"`
}
