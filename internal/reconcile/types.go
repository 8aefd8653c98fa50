// Package reconcile содержит ядро сверки "студент — курс — платежи".
//
// Ядро чистое: оно не знает ни про gin, ни про gorm, ни про Redis.
// На вход — три снимка коллекций, на выход — по одной записи на студента
// плюс сводка по партии. Журнал платежей всегда источник истины для
// оплаченной суммы; сохранённые зеркала finalPayment/balancePayment на
// студенте ядром не читаются никогда.
package reconcile

import "time"

// MatchType identifies which rule of the cascade produced a match.
type MatchType string

const (
	// MatchExactTriple — единственный тип, которому разрешено влиять на
	// финансовый баланс: activity==courseId AND program==name AND
	// category==level одновременно.
	MatchExactTriple MatchType = "EXACT_TRIPLE_MATCH"

	// Диагностические ярусы. Используются только в inspect-эндпоинтах,
	// баланс по ним не считается.
	MatchActivityLevel MatchType = "ACTIVITY_LEVEL_MATCH"
	MatchProgramLevel  MatchType = "PROGRAM_LEVEL_MATCH"
	MatchActivityOnly  MatchType = "ACTIVITY_ONLY_MATCH"
	MatchProgramOnly   MatchType = "PROGRAM_ONLY_MATCH"

	MatchNone MatchType = "NO_MATCH"
)

// Categories of ledger entries. Только CategoryCoursePayment и
// CategoryCourseRegistration входят в paidToDate для баланса курса.
const (
	CategoryStudentRegistration = "Student Registration"
	CategoryCourseRegistration  = "Course Registration"
	CategoryConfirmationFee     = "Confirmation Fee"
	CategoryCoursePayment       = "Course Payment"
)

// Ledger entry statuses. В суммах участвуют только Completed.
const (
	EntryCompleted = "Completed"
	EntryPending   = "Pending"
	EntryFailed    = "Failed"
)

// Derived payment statuses. Модель бинарная: "Partial" — легаси-значение,
// которое миграционный эндпоинт переписывает в Pending.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusPartial = "Partial"
)

// Student is the read-only snapshot the core consumes. Category и Level
// приходят раздельно; ключом сопоставления служит Category, Level —
// справочное поле.
type Student struct {
	StudentID        string     `json:"studentId"`
	Name             string     `json:"name"`
	Activity         string     `json:"activity"`
	Program          string     `json:"program"`
	Category         string     `json:"category"`
	Level            string     `json:"level"`
	CourseStartDate  *time.Time `json:"courseStartDate,omitempty"`
	PaymentFrequency string     `json:"paymentFrequency,omitempty"`
}

// Course is the read-only catalog snapshot.
type Course struct {
	CourseID string  `json:"courseId"`
	Name     string  `json:"name"`
	Level    string  `json:"level"`
	Type     string  `json:"type,omitempty"`
	PriceINR float64 `json:"priceINR"`
	Status   string  `json:"status,omitempty"`
}

// LedgerEntry is one transaction from the append-only payments ledger.
type LedgerEntry struct {
	StudentID       string    `json:"studentId"`
	Amount          float64   `json:"amount"`
	PaymentCategory string    `json:"paymentCategory"`
	PaymentStatus   string    `json:"paymentStatus"`
	PaymentDate     time.Time `json:"paymentDate"`
}

// Record is the reconciled view for one student. Производная величина:
// пересчитывается при каждом вызове и нигде не хранится как истина.
type Record struct {
	StudentID        string             `json:"studentId"`
	StudentName      string             `json:"studentName"`
	MatchedCourseID  *string            `json:"matchedCourseId"`
	MatchType        MatchType          `json:"matchType"`
	ResolvedFee      float64            `json:"resolvedFee"`
	PaidToDate       float64            `json:"paidToDate"`
	Balance          float64            `json:"balance"`
	PaymentStatus    string             `json:"paymentStatus"`
	ReminderEligible bool               `json:"reminderEligible"`
	ByCategory       map[string]float64 `json:"byCategory,omitempty"`
	SkippedEntries   int                `json:"skippedEntries,omitempty"`
	Diagnostic       string             `json:"diagnostic,omitempty"`
}

// Summary aggregates one reconciliation pass.
type Summary struct {
	TotalStudents    int               `json:"totalStudents"`
	Matched          int               `json:"matched"`
	Unmatched        int               `json:"unmatched"`
	CountsByType     map[MatchType]int `json:"countsByMatchType"`
	TotalResolvedFee float64           `json:"totalResolvedFee"`
	TotalPaidToDate  float64           `json:"totalPaidToDate"`
	TotalOutstanding float64           `json:"totalOutstandingBalance"`
	SkippedEntries   int               `json:"skippedLedgerEntries"`
}

// Report is the full output of one batch run.
type Report struct {
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`
}
