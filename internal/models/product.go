package models

// Product — таблица products, сортировка по умолчанию — по названию
type Product struct {
	Base
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	ImagePath   string // относительный путь, напр. "/uploads/abc123.jpg"
	PriceCents  int    `gorm:"not null"`
	CategoryID  uint   `gorm:"index;not null"`
	Category    Category
	OwnerID     uint `gorm:"index"`
	Owner       User
	IsPublished bool `gorm:"not null;default:false"`

	// ActiveVersionLabel — имя активной версии, выставляется при создании
	ActiveVersionLabel string
	// ActiveVersions — выбор активных версий (m2m, как в исходной форме)
	ActiveVersions []Version `gorm:"many2many:product_active_versions"`
}
