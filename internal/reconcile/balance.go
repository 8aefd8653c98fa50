package reconcile

// BalanceResult — производные финансовые поля для одной записи.
type BalanceResult struct {
	Balance          float64
	Status           string
	ReminderEligible bool
}

// ComputeBalance выводит баланс и статус из платы и оплаченной суммы.
//
// Баланс не бывает отрицательным: переплата даёт ноль. Статус бинарный —
// Paid при нулевом балансе, иначе Pending (промежуточный "Partial"
// выведен из модели; см. эндпоинт миграции). Напоминание положено только
// строго сматченному студенту с ненулевым балансом: без точного
// совпадения нет платы, о которой имело бы смысл напоминать.
func ComputeBalance(fee, paidToDate float64, matchType MatchType) BalanceResult {
	balance := fee - paidToDate
	if balance < 0 {
		balance = 0
	}

	status := StatusPending
	if balance == 0 {
		status = StatusPaid
	}

	return BalanceResult{
		Balance:          balance,
		Status:           status,
		ReminderEligible: matchType == MatchExactTriple && balance > 0,
	}
}
