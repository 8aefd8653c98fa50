// models/payment.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment представляет одну запись в журнале платежей (append-only).
// Записи никогда не обновляются задним числом: корректировка — это
// новая запись, а не правка старой.
type Payment struct {
	gorm.Model
	StudentID       string    `json:"studentId" gorm:"index;not null"`
	Amount          float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	PaymentCategory string    `json:"paymentCategory" gorm:"not null"`
	PaymentStatus   string    `json:"paymentStatus" gorm:"default:'Pending'"`
	PaymentDate     time.Time `json:"paymentDate"`
	PaymentMethod   string    `json:"paymentMethod"`
	ReceiptNumber   string    `json:"receiptNumber" gorm:"uniqueIndex"`
	Note            string    `json:"note"`
}
