package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entry(studentID string, amount float64, category, status string) LedgerEntry {
	return LedgerEntry{
		StudentID:       studentID,
		Amount:          amount,
		PaymentCategory: category,
		PaymentStatus:   status,
		PaymentDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregate_CompletedOnly(t *testing.T) {
	entries := []LedgerEntry{
		entry("S1", 4000, CategoryCoursePayment, EntryCompleted),
		entry("S1", 1000, CategoryCoursePayment, EntryPending),
		entry("S1", 2000, CategoryCoursePayment, EntryFailed),
	}

	totals := Aggregate("S1", entries)
	assert.Equal(t, float64(4000), totals.PaidToDate)
	assert.Equal(t, 0, totals.Skipped) // Pending/Failed не "пропущенные", а просто не учтённые
}

func TestAggregate_CategoryScoping(t *testing.T) {
	entries := []LedgerEntry{
		entry("S1", 4000, CategoryCoursePayment, EntryCompleted),
		entry("S1", 1500, CategoryCourseRegistration, EntryCompleted),
		entry("S1", 500, CategoryStudentRegistration, EntryCompleted),
		entry("S1", 300, CategoryConfirmationFee, EntryCompleted),
	}

	totals := Aggregate("S1", entries)
	// Регистрационные сборы не уменьшают баланс курса...
	assert.Equal(t, float64(5500), totals.PaidToDate)
	// ...но видны в разбивке по категориям.
	assert.Equal(t, float64(500), totals.ByCategory[CategoryStudentRegistration])
	assert.Equal(t, float64(300), totals.ByCategory[CategoryConfirmationFee])
	assert.Equal(t, float64(4000), totals.ByCategory[CategoryCoursePayment])
	assert.Equal(t, float64(1500), totals.ByCategory[CategoryCourseRegistration])
}

func TestAggregate_FiltersByStudent(t *testing.T) {
	entries := []LedgerEntry{
		entry("S1", 4000, CategoryCoursePayment, EntryCompleted),
		entry("S2", 9000, CategoryCoursePayment, EntryCompleted),
		entry(" s1 ", 1000, CategoryCoursePayment, EntryCompleted), // тот же студент, грязный id
	}

	totals := Aggregate("S1", entries)
	assert.Equal(t, float64(5000), totals.PaidToDate)
}

func TestAggregate_SkipsMalformedEntries(t *testing.T) {
	entries := []LedgerEntry{
		entry("S1", -100, CategoryCoursePayment, EntryCompleted), // отрицательная сумма
		entry("S1", 400, "Cafeteria", EntryCompleted),            // неизвестная категория
		entry("S1", 600, "", EntryCompleted),                     // без категории
		entry("S1", 4000, CategoryCoursePayment, EntryCompleted),
	}

	totals := Aggregate("S1", entries)
	assert.Equal(t, float64(4000), totals.PaidToDate)
	assert.Equal(t, 3, totals.Skipped)
}

func TestAggregate_EmptyLedger(t *testing.T) {
	totals := Aggregate("S1", nil)
	assert.Equal(t, float64(0), totals.PaidToDate)
	assert.Empty(t, totals.ByCategory)
}
