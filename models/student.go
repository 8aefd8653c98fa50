// models/student.go

package models

import (
	"time"

	"gorm.io/gorm"
)

// Student represents an enrolled (or registered) student of the academy.
// Поля activity/program/category — ключи сопоставления с каталогом курсов,
// они заполняются при регистрации и ядром сверки не изменяются.
type Student struct {
	gorm.Model
	StudentID string `json:"studentId" gorm:"uniqueIndex;not null"`
	Name      string `json:"name" gorm:"not null"`

	// --- ENROLLMENT DESCRIPTORS ---
	Activity string `json:"activity"`
	Program  string `json:"program"`
	Category string `json:"category"`
	Level    string `json:"level"`

	// --- COURSE TIMING / PAYMENT METADATA ---
	CourseStartDate  *time.Time `json:"courseStartDate"`
	PaymentFrequency string     `json:"paymentFrequency"`

	IsActive *bool `json:"isActive" gorm:"default:true"`

	// --- CONTACT INFO ---
	Email string `json:"email"`
	Phone string `json:"phone"`

	// ВАЖНО: это денормализованные зеркала для списочных экранов.
	// Источник истины — журнал платежей; эти колонки перезаписываются
	// только эндпоинтом обновления из ядра сверки и никогда им не читаются.
	FinalPayment   float64 `json:"finalPayment" gorm:"default:0"`
	BalancePayment float64 `json:"balancePayment" gorm:"default:0"`
	PaymentStatus  string  `json:"paymentStatus" gorm:"default:'Pending'"`
}
