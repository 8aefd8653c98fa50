package models

import "gorm.io/gorm"

// Course represents one catalog entry. Несколько записей могут иметь
// одинаковое name и отличаться уровнем/типом — различать их должно
// ядро сверки, а не каталог.
type Course struct {
	gorm.Model
	CourseID string  `json:"courseId" gorm:"uniqueIndex;not null"`
	Name     string  `json:"name" gorm:"not null"`
	Level    string  `json:"level"`
	Type     string  `json:"type"`
	PriceINR float64 `json:"priceINR" gorm:"type:numeric(12,2);not null;default:0"`
	Status   string  `json:"status" gorm:"default:'Active'"`
}
