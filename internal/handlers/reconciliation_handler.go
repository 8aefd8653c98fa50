// internal/handlers/reconciliation_handler.go
package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/reconcile"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/storage"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReconciliationHandler инкапсулирует зависимости эндпоинтов сверки.
// Ядро получает данные только через reconcile.Store; прямой *gorm.DB
// нужен лишь миграции легаси-статусов и перезаписи зеркал.
type ReconciliationHandler struct {
	DB     *gorm.DB
	Store  reconcile.Store
	Engine *reconcile.Engine
}

// NewReconciliationHandler создает новый экземпляр ReconciliationHandler.
func NewReconciliationHandler(db *gorm.DB) *ReconciliationHandler {
	return &ReconciliationHandler{
		DB:     db,
		Store:  storage.NewGormStore(db),
		Engine: reconcile.NewEngine(nil),
	}
}

// RunHandler запускает полную сверку и возвращает записи со сводкой.
// Отчёт каждый раз считается заново из журнала — никакие сохранённые
// "итоговые" суммы на студентах не читаются.
func (h *ReconciliationHandler) RunHandler(c *gin.Context) {
	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// StudentBalanceHandler возвращает сверенный баланс одного студента.
func (h *ReconciliationHandler) StudentBalanceHandler(c *gin.Context) {
	rec, err := h.Engine.ComputeBalanceForStudent(c.Request.Context(), h.Store, c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

// InspectMatchResponse — диагностика сопоставления для inspect-эндпоинта.
type InspectMatchResponse struct {
	StudentID string            `json:"studentId"`
	Strict    reconcile.MatchType `json:"strictMatchType"`
	Fallback  reconcile.MatchType `json:"fallbackMatchType"`
	CourseID  *string           `json:"matchedCourseId"`
	// BalanceAffecting — true только для строгого совпадения; ярусы
	// слабее никогда не влияют на финансовый результат.
	BalanceAffecting bool `json:"balanceAffecting"`
}

// InspectMatchHandler показывает, как (и почему не) сматчился студент,
// включая диагностические ярусы каскада.
func (h *ReconciliationHandler) InspectMatchHandler(c *gin.Context) {
	ctx := c.Request.Context()

	students, err := h.Store.ListStudents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}
	id := reconcile.NormalizeForCompare(c.Param("id"))
	var student *reconcile.Student
	for i := range students {
		if reconcile.NormalizeForCompare(students[i].StudentID) == id {
			student = &students[i]
			break
		}
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	courses, err := h.Store.ListCourses(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	strict := reconcile.Match(*student, courses)
	fallback := reconcile.InspectMatch(*student, courses)

	resp := InspectMatchResponse{
		StudentID:        student.StudentID,
		Strict:           strict.MatchType,
		Fallback:         fallback.MatchType,
		BalanceAffecting: strict.MatchType == reconcile.MatchExactTriple,
	}
	if fallback.Course != nil {
		courseID := fallback.Course.CourseID
		resp.CourseID = &courseID
	}
	c.JSON(http.StatusOK, resp)
}

// DebtorsHandler возвращает должников (баланс > 0) по убыванию долга.
func (h *ReconciliationHandler) DebtorsHandler(c *gin.Context) {
	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}

	debtors := make([]reconcile.Record, 0)
	for _, rec := range report.Records {
		if rec.Balance > 0 {
			debtors = append(debtors, rec)
		}
	}
	// Сортируем по убыванию долга; при равенстве — по studentId, чтобы
	// порядок был стабилен между запусками.
	sort.SliceStable(debtors, func(i, j int) bool {
		if debtors[i].Balance != debtors[j].Balance {
			return debtors[i].Balance > debtors[j].Balance
		}
		return debtors[i].StudentID < debtors[j].StudentID
	})

	page, total := PaginateSlice(c, debtors)
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, page, total))
}

// RemindersHandler возвращает записи, по которым положено напоминание:
// строгое совпадение и ненулевой баланс. Сама доставка (email/SMS/
// WhatsApp) — забота внешнего сервиса уведомлений.
func (h *ReconciliationHandler) RemindersHandler(c *gin.Context) {
	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}

	eligible := make([]reconcile.Record, 0)
	for _, rec := range report.Records {
		if rec.ReminderEligible {
			eligible = append(eligible, rec)
		}
	}
	c.JSON(http.StatusOK, gin.H{"reminders": eligible, "count": len(eligible)})
}

// MigratePartialHandler переписывает легаси-статус "Partial" в "Pending".
// Модель статусов бинарная; этот эндпоинт существует только ради старых
// записей и идемпотентен.
func (h *ReconciliationHandler) MigratePartialHandler(c *gin.Context) {
	result := h.DB.Model(&models.Student{}).
		Where("payment_status = ?", reconcile.StatusPartial).
		Update("payment_status", reconcile.StatusPending)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to migrate statuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Partial statuses migrated to Pending",
		"migrated": result.RowsAffected,
	})
}

// RefreshMirrorsHandler перезаписывает денормализованные зеркала
// finalPayment/balancePayment/paymentStatus на студентах из свежего
// отчёта сверки. Зеркала — презентационный кэш для списочных экранов;
// обновлять их можно только отсюда, читать ядру — никогда.
func (h *ReconciliationHandler) RefreshMirrorsHandler(c *gin.Context) {
	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}

	updated := 0
	for _, rec := range report.Records {
		result := h.DB.Model(&models.Student{}).
			Where("student_id = ?", rec.StudentID).
			Updates(map[string]interface{}{
				"final_payment":   rec.ResolvedFee,
				"balance_payment": rec.Balance,
				"payment_status":  rec.PaymentStatus,
			})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh mirrors"})
			return
		}
		updated += int(result.RowsAffected)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Student payment mirrors refreshed",
		"updated": updated,
		"summary": report.Summary,
	})
}
