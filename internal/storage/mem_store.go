package storage

import (
	"context"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/reconcile"
)

// MemStore — reconcile.Store поверх срезов в памяти. Используется в
// тестах и как заглушка, пока нет настоящей БД. Err, если задан,
// возвращается из всех методов — для проверки фатального пути.
type MemStore struct {
	Students []reconcile.Student
	Courses  []reconcile.Course
	Entries  []reconcile.LedgerEntry
	Err      error
}

func (m *MemStore) ListStudents(ctx context.Context) ([]reconcile.Student, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Students, nil
}

func (m *MemStore) ListCourses(ctx context.Context) ([]reconcile.Course, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Courses, nil
}

func (m *MemStore) ListCompletedLedgerEntries(ctx context.Context, studentIDs ...string) ([]reconcile.LedgerEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(studentIDs) == 0 {
		return m.Entries, nil
	}
	want := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		want[reconcile.NormalizeForCompare(id)] = true
	}
	var out []reconcile.LedgerEntry
	for _, e := range m.Entries {
		if want[reconcile.NormalizeForCompare(e.StudentID)] {
			out = append(out, e)
		}
	}
	return out, nil
}
