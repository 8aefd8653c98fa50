// internal/handlers/course_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CourseInput - структура для приема данных каталога от клиента.
type CourseInput struct {
	CourseID string   `json:"courseId"`
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Type     string   `json:"type"`
	PriceINR *float64 `json:"priceINR"`
	Status   string   `json:"status"`
}

// ListCoursesHandler возвращает каталог курсов с пагинацией,
// поиском и фильтром по статусу.
func ListCoursesHandler(c *gin.Context) {
	var courses []models.Course
	var totalRows int64

	baseQuery := config.DB.Model(&models.Course{}).Where("deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(course_id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(level) LIKE ?",
			pattern, pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count courses"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).Order("course_id asc").Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, courses, totalRows))
}

// GetCourseHandler возвращает один курс по его courseId.
func GetCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("course_id = ?", c.Param("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourseHandler создает новую запись каталога.
func CreateCourseHandler(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CourseID == "" || input.Name == "" || input.Level == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указаны courseId, name или level"})
		return
	}

	course := models.Course{
		CourseID: input.CourseID,
		Name:     input.Name,
		Level:    input.Level,
		Type:     input.Type,
		Status:   input.Status,
	}
	if input.PriceINR != nil {
		if *input.PriceINR < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Цена курса не может быть отрицательной"})
			return
		}
		course.PriceINR = *input.PriceINR
	}
	if course.Status == "" {
		course.Status = "Active"
	}

	if err := config.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourseHandler обновляет запись каталога.
func UpdateCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("course_id = ?", c.Param("id")).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		course.Name = input.Name
	}
	if input.Level != "" {
		course.Level = input.Level
	}
	if input.Type != "" {
		course.Type = input.Type
	}
	if input.Status != "" {
		course.Status = input.Status
	}
	if input.PriceINR != nil {
		if *input.PriceINR < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Цена курса не может быть отрицательной"})
			return
		}
		course.PriceINR = *input.PriceINR
	}

	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourseHandler удаляет запись каталога (мягкое удаление).
func DeleteCourseHandler(c *gin.Context) {
	result := config.DB.Where("course_id = ?", c.Param("id")).Delete(&models.Course{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
