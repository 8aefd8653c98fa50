package reconcile

// LedgerTotals — результат агрегации журнала по одному студенту.
type LedgerTotals struct {
	// PaidToDate — сумма Completed-платежей категорий Course Payment и
	// Course Registration. Регистрационные сборы (Student Registration,
	// Confirmation Fee) учитываются в ByCategory, но баланс курса не
	// уменьшают.
	PaidToDate float64
	ByCategory map[string]float64
	// Skipped — сколько записей отброшено как некорректные
	// (отрицательная сумма или неизвестная категория).
	Skipped int
}

func knownCategory(category string) bool {
	switch category {
	case CategoryStudentRegistration, CategoryCourseRegistration,
		CategoryConfirmationFee, CategoryCoursePayment:
		return true
	}
	return false
}

// Aggregate суммирует записи журнала для одного студента.
// Учитываются только записи этого студента со статусом Completed;
// Pending и Failed не уменьшают баланс. Снимок журнала не изменяется.
func Aggregate(studentID string, entries []LedgerEntry) LedgerTotals {
	totals := LedgerTotals{ByCategory: make(map[string]float64)}
	id := NormalizeForCompare(studentID)

	for _, e := range entries {
		if NormalizeForCompare(e.StudentID) != id {
			continue
		}
		if e.PaymentStatus != EntryCompleted {
			continue
		}
		category := Normalize(e.PaymentCategory)
		if e.Amount < 0 || !knownCategory(category) {
			totals.Skipped++
			continue
		}

		totals.ByCategory[category] += e.Amount
		if category == CategoryCoursePayment || category == CategoryCourseRegistration {
			totals.PaidToDate += e.Amount
		}
	}
	return totals
}
