package models

// Category — таблица categories
type Category struct {
	Base
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
}
