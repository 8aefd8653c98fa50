// internal/routes/api_routes.go
package routes

import (
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все маршруты API.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- СТУДЕНТЫ ---
		students := apiGroup.Group("/students")
		{
			students.GET("", handlers.ListStudentsHandler)
			students.POST("", handlers.CreateStudentHandler)
			students.GET("/:id", handlers.GetStudentHandler)
			students.PUT("/:id", handlers.UpdateStudentHandler)
			students.DELETE("/:id", handlers.DeleteStudentHandler)
			students.GET("/:id/payments", handlers.ListStudentPaymentsHandler)
		}

		// --- КАТАЛОГ КУРСОВ ---
		courses := apiGroup.Group("/courses")
		{
			courses.GET("", handlers.ListCoursesHandler)
			courses.POST("", handlers.CreateCourseHandler)
			courses.GET("/:id", handlers.GetCourseHandler)
			courses.PUT("/:id", handlers.UpdateCourseHandler)
			courses.DELETE("/:id", handlers.DeleteCourseHandler)
		}

		// --- ЖУРНАЛ ПЛАТЕЖЕЙ ---
		payments := apiGroup.Group("/payments")
		{
			payments.GET("", handlers.ListPaymentsHandler)
			payments.POST("", handlers.CreatePaymentHandler)
		}

		// --- СВЕРКА ---
		// Один канонический конвейер вместо дюжины расползшихся
		// реализаций в старых маршрутах.
		rh := handlers.NewReconciliationHandler(config.DB)
		reconciliation := apiGroup.Group("/reconciliation")
		{
			reconciliation.GET("", rh.RunHandler)
			reconciliation.GET("/students/:id", rh.StudentBalanceHandler)
			reconciliation.GET("/students/:id/match", rh.InspectMatchHandler)
			reconciliation.GET("/debtors", rh.DebtorsHandler)
			reconciliation.GET("/reminders", rh.RemindersHandler)
			reconciliation.GET("/export", rh.ExportReconciliationHandler)
			reconciliation.POST("/migrate-partial", rh.MigratePartialHandler)
			reconciliation.POST("/refresh-mirrors", rh.RefreshMirrorsHandler)
		}

		// --- ДАШБОРД ---
		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("/summary", rh.DashboardSummaryHandler)
		}
	}
}
