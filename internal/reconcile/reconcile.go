package reconcile

import (
	"context"
	"fmt"
	"log/slog"
)

// Store — интерфейс хранилища, которым пользуется оркестратор.
// Владение соединением и его жизненным циклом целиком на стороне
// реализации; ядро только читает. Ошибка любого из трёх методов —
// фатальная ошибка партии, она поднимается наверх без изменений.
type Store interface {
	ListStudents(ctx context.Context) ([]Student, error)
	ListCourses(ctx context.Context) ([]Course, error)
	// ListCompletedLedgerEntries возвращает записи журнала; при пустом
	// списке studentIDs — по всем студентам. Реализация может вернуть и
	// не-Completed записи, агрегатор отфильтрует их сам.
	ListCompletedLedgerEntries(ctx context.Context, studentIDs ...string) ([]LedgerEntry, error)
}

// Engine выполняет сверку. Состояния между вызовами нет, один Engine
// можно безопасно использовать из параллельных запросов.
type Engine struct {
	log *slog.Logger
}

// NewEngine создаёт движок сверки. nil-логгер заменяется на slog.Default.
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// Run загружает все три коллекции один раз и прогоняет Reconcile.
// Никаких запросов по одному студенту внутри цикла: N+1 на журнале
// платежей — именно та болезнь, от которой это ядро лечит.
func (e *Engine) Run(ctx context.Context, store Store) (*Report, error) {
	students, err := store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list students: %w", err)
	}
	courses, err := store.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list courses: %w", err)
	}
	entries, err := store.ListCompletedLedgerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list ledger entries: %w", err)
	}
	return e.Reconcile(ctx, students, courses, entries)
}

// Reconcile — чистая функция партии: детерминированно отображает три
// снимка в отчёт. Сбой на отдельном студенте не прерывает партию — такая
// запись выходит как NO_MATCH с диагнострокой. Прерывание возможно
// только через ctx (проверяется между студентами).
func (e *Engine) Reconcile(ctx context.Context, students []Student, courses []Course, entries []LedgerEntry) (*Report, error) {
	report := &Report{
		Records: make([]Record, 0, len(students)),
		Summary: Summary{
			TotalStudents: len(students),
			CountsByType:  make(map[MatchType]int),
		},
	}

	// Журнал группируется по студенту заранее, чтобы цикл не сканировал
	// весь журнал на каждого студента.
	byStudent := groupEntries(entries)

	for _, s := range students {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec := e.reconcileStudent(s, courses, byStudent[NormalizeForCompare(s.StudentID)])

		report.Summary.CountsByType[rec.MatchType]++
		if rec.MatchType == MatchExactTriple {
			report.Summary.Matched++
		} else {
			report.Summary.Unmatched++
		}
		report.Summary.TotalResolvedFee += rec.ResolvedFee
		report.Summary.TotalPaidToDate += rec.PaidToDate
		report.Summary.TotalOutstanding += rec.Balance
		report.Summary.SkippedEntries += rec.SkippedEntries

		report.Records = append(report.Records, rec)
	}

	return report, nil
}

// reconcileStudent собирает запись по одному студенту. Паника в теле
// (испорченная запись, чего бы таковая ни стоила) не валит партию.
func (e *Engine) reconcileStudent(s Student, courses []Course, entries []LedgerEntry) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Сбой сверки по студенту, запись помечена NO_MATCH",
				"studentId", s.StudentID, "panic", r)
			// Запись в форме NO_MATCH: нулевая плата, нулевой баланс,
			// без права на напоминание.
			rec = Record{
				StudentID:     s.StudentID,
				StudentName:   s.Name,
				MatchType:     MatchNone,
				PaymentStatus: StatusPaid,
				Diagnostic:    fmt.Sprintf("reconciliation failed: %v", r),
			}
		}
	}()

	outcome := Match(s, courses)
	if outcome.DuplicateCandidates > 0 {
		// Дубли каталога — нарушение ожиданий о данных, но не фатальное:
		// выбор детерминирован, предупреждения достаточно.
		e.log.Warn("Каталог содержит дубли для точного совпадения",
			"studentId", s.StudentID,
			"courseId", outcome.Course.CourseID,
			"duplicates", outcome.DuplicateCandidates)
	}

	fee := ResolveFee(outcome)
	totals := Aggregate(s.StudentID, entries)
	if totals.Skipped > 0 {
		e.log.Warn("Некорректные записи журнала пропущены",
			"studentId", s.StudentID, "skipped", totals.Skipped)
	}
	balance := ComputeBalance(fee, totals.PaidToDate, outcome.MatchType)

	rec = Record{
		StudentID:        s.StudentID,
		StudentName:      s.Name,
		MatchType:        outcome.MatchType,
		ResolvedFee:      fee,
		PaidToDate:       totals.PaidToDate,
		Balance:          balance.Balance,
		PaymentStatus:    balance.Status,
		ReminderEligible: balance.ReminderEligible,
		ByCategory:       totals.ByCategory,
		SkippedEntries:   totals.Skipped,
	}
	if outcome.Course != nil {
		id := outcome.Course.CourseID
		rec.MatchedCourseID = &id
	}
	return rec
}

// ComputeBalanceForStudent — удобная обёртка для одного студента:
// загружает его запись и каталог, прогоняет тот же конвейер, что и
// партия. Отсутствие студента — ошибка вызывающему.
func (e *Engine) ComputeBalanceForStudent(ctx context.Context, store Store, studentID string) (*Record, error) {
	students, err := store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list students: %w", err)
	}

	id := NormalizeForCompare(studentID)
	var student *Student
	for i := range students {
		if NormalizeForCompare(students[i].StudentID) == id {
			student = &students[i]
			break
		}
	}
	if student == nil {
		return nil, fmt.Errorf("reconcile: student %q not found", studentID)
	}

	courses, err := store.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list courses: %w", err)
	}
	entries, err := store.ListCompletedLedgerEntries(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: list ledger entries: %w", err)
	}

	rec := e.reconcileStudent(*student, courses, entries)
	return &rec, nil
}

func groupEntries(entries []LedgerEntry) map[string][]LedgerEntry {
	grouped := make(map[string][]LedgerEntry)
	for _, e := range entries {
		key := NormalizeForCompare(e.StudentID)
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}
