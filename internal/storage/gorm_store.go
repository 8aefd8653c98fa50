// Package storage реализует коллектор данных для ядра сверки поверх
// GORM/Postgres. Ядро видит только интерфейс reconcile.Store; соединение
// и его жизненный цикл принадлежат этому пакету и config.ConnectDB.
package storage

import (
	"context"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/reconcile"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"gorm.io/gorm"
)

// GormStore — продовая реализация reconcile.Store.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore создает хранилище поверх готового подключения.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// ListStudents возвращает снимок всех активных студентов.
func (s *GormStore) ListStudents(ctx context.Context) ([]reconcile.Student, error) {
	var rows []models.Student
	if err := s.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("student_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.Student{
			StudentID:        r.StudentID,
			Name:             r.Name,
			Activity:         r.Activity,
			Program:          r.Program,
			Category:         r.Category,
			Level:            r.Level,
			CourseStartDate:  r.CourseStartDate,
			PaymentFrequency: r.PaymentFrequency,
		})
	}
	return out, nil
}

// ListCourses возвращает снимок каталога. Неактивные курсы тоже входят:
// студент мог записаться, пока курс ещё был активен, и его плата от
// смены статуса не исчезает.
func (s *GormStore) ListCourses(ctx context.Context) ([]reconcile.Course, error) {
	var rows []models.Course
	if err := s.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("course_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.Course, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.Course{
			CourseID: r.CourseID,
			Name:     r.Name,
			Level:    r.Level,
			Type:     r.Type,
			PriceINR: r.PriceINR,
			Status:   r.Status,
		})
	}
	return out, nil
}

// ListCompletedLedgerEntries возвращает Completed-записи журнала, при
// непустом списке studentIDs — только по этим студентам.
func (s *GormStore) ListCompletedLedgerEntries(ctx context.Context, studentIDs ...string) ([]reconcile.LedgerEntry, error) {
	q := s.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Where("payment_status = ?", reconcile.EntryCompleted)
	if len(studentIDs) > 0 {
		q = q.Where("student_id IN ?", studentIDs)
	}

	var rows []models.Payment
	if err := q.Order("payment_date asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.LedgerEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.LedgerEntry{
			StudentID:       r.StudentID,
			Amount:          r.Amount,
			PaymentCategory: r.PaymentCategory,
			PaymentStatus:   r.PaymentStatus,
			PaymentDate:     r.PaymentDate,
		})
	}
	return out, nil
}
