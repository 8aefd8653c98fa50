// internal/handlers/student_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StudentInput - структура для приема данных от клиента.
// Дату начала курса принимаем строкой, чтобы не зависеть от формата
// автоматического парсинга time.Time.
type StudentInput struct {
	StudentID        string `json:"studentId"`
	Name             string `json:"name"`
	Activity         string `json:"activity"`
	Program          string `json:"program"`
	Category         string `json:"category"`
	Level            string `json:"level"`
	CourseStartDate  string `json:"courseStartDate"`
	PaymentFrequency string `json:"paymentFrequency"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
}

// ListStudentsHandler возвращает список студентов с пагинацией и поиском.
func ListStudentsHandler(c *gin.Context) {
	var students []models.Student
	var totalRows int64

	baseQuery := config.DB.Model(&models.Student{}).Where("deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(student_id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(program) LIKE ?",
			pattern, pattern, pattern)
	}
	if active := c.Query("active"); active != "" {
		baseQuery = baseQuery.Where("is_active = ?", active == "true")
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count students"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).Order("student_id asc").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, students, totalRows))
}

// GetStudentHandler возвращает одного студента по его studentId.
func GetStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.Where("student_id = ?", c.Param("id")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateStudentHandler создает нового студента.
func CreateStudentHandler(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StudentID == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указаны studentId или name"})
		return
	}

	student := models.Student{
		StudentID:        input.StudentID,
		Name:             input.Name,
		Activity:         input.Activity,
		Program:          input.Program,
		Category:         input.Category,
		Level:            input.Level,
		PaymentFrequency: input.PaymentFrequency,
		Email:            input.Email,
		Phone:            input.Phone,
	}

	if input.CourseStartDate != "" {
		startDate, err := time.Parse("2006-01-02", input.CourseStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Ожидается YYYY-MM-DD."})
			return
		}
		student.CourseStartDate = &startDate
	}

	if err := config.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudentHandler обновляет данные студента.
// Зеркала finalPayment/balancePayment через этот эндпоинт не меняются:
// их переписывает только сверка.
func UpdateStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.Where("student_id = ?", c.Param("id")).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		student.Name = input.Name
	}
	student.Activity = input.Activity
	student.Program = input.Program
	student.Category = input.Category
	student.Level = input.Level
	student.PaymentFrequency = input.PaymentFrequency
	student.Email = input.Email
	student.Phone = input.Phone

	if input.CourseStartDate != "" {
		startDate, err := time.Parse("2006-01-02", input.CourseStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Ожидается YYYY-MM-DD."})
			return
		}
		student.CourseStartDate = &startDate
	}

	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudentHandler удаляет студента (мягкое удаление).
func DeleteStudentHandler(c *gin.Context) {
	result := config.DB.Where("student_id = ?", c.Param("id")).Delete(&models.Student{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
