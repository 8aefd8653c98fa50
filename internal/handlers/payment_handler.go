// internal/handlers/payment_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/reconcile"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentInput - структура для приема платежа от клиента.
// Дата — строкой, чтобы избежать ошибки автоматического парсинга.
type PaymentInput struct {
	StudentID       string  `json:"studentId"`
	Amount          float64 `json:"amount"`
	PaymentCategory string  `json:"paymentCategory"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentDate     string  `json:"paymentDate"`
	PaymentMethod   string  `json:"paymentMethod"`
	Note            string  `json:"note"`
}

// PaymentReceiptResponse — ответ на запись платежа. AmountInWords
// нужен фронтенду для печатной квитанции.
type PaymentReceiptResponse struct {
	models.Payment
	AmountInWords string `json:"amountInWords"`
}

func validCategory(category string) bool {
	switch category {
	case reconcile.CategoryStudentRegistration, reconcile.CategoryCourseRegistration,
		reconcile.CategoryConfirmationFee, reconcile.CategoryCoursePayment:
		return true
	}
	return false
}

func validEntryStatus(status string) bool {
	switch status {
	case reconcile.EntryCompleted, reconcile.EntryPending, reconcile.EntryFailed:
		return true
	}
	return false
}

// CreatePaymentHandler записывает платеж в журнал. Журнал append-only:
// эндпоинтов правки и удаления платежей нет по построению.
func CreatePaymentHandler(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StudentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан studentId"})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма платежа должна быть больше нуля"})
		return
	}
	if !validCategory(input.PaymentCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная категория платежа: " + input.PaymentCategory})
		return
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = reconcile.EntryCompleted
	}
	if !validEntryStatus(input.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный статус платежа: " + input.PaymentStatus})
		return
	}

	paymentDate := time.Now()
	if input.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Ожидается YYYY-MM-DD."})
			return
		}
		paymentDate = parsed
	}

	// Проверяем, что студент существует: платеж без студента — мусор в журнале.
	var student models.Student
	if err := config.DB.Where("student_id = ?", input.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	payment := models.Payment{
		StudentID:       input.StudentID,
		Amount:          input.Amount,
		PaymentCategory: input.PaymentCategory,
		PaymentStatus:   input.PaymentStatus,
		PaymentDate:     paymentDate,
		PaymentMethod:   input.PaymentMethod,
		ReceiptNumber:   "RCP-" + uuid.NewString(),
		Note:            input.Note,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	// Сводка дашборда устарела — сбрасываем кэш.
	invalidateDashboardCache()

	c.JSON(http.StatusCreated, PaymentReceiptResponse{
		Payment:       payment,
		AmountInWords: amountInWords(payment.Amount),
	})
}

// ListPaymentsHandler возвращает журнал платежей с пагинацией и поиском.
func ListPaymentsHandler(c *gin.Context) {
	var payments []models.Payment
	var totalRows int64

	baseQuery := config.DB.Model(&models.Payment{}).Where("deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(student_id) LIKE ? OR LOWER(receipt_number) LIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		baseQuery = baseQuery.Where("payment_category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("payment_status = ?", status)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count payments"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, payments, totalRows))
}

// ListStudentPaymentsHandler возвращает все платежи одного студента.
func ListStudentPaymentsHandler(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.
		Where("student_id = ? AND deleted_at IS NULL", c.Param("id")).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// amountInWords переводит сумму в слова для квитанции: рупии прописью,
// пайсы цифрами.
func amountInWords(amount float64) string {
	rupees := int(amount)
	paise := int(amount*100+0.5) - rupees*100
	words := strings.TrimSpace(num2words.Convert(rupees))
	if paise > 0 {
		return fmt.Sprintf("%s rupees and %02d paise", words, paise)
	}
	return words + " rupees"
}

func invalidateDashboardCache() {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, dashboardCacheKey).Err(); err != nil {
		slog.Warn("Не удалось сбросить кэш сводки", "error", err)
	}
}
