package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
// Аутентификация живет на внешнем шлюзе, поэтому группы здесь без
// auth-middleware.
func SetupRoutes(r *gin.Engine) {
	RegisterAPIRoutes(r.Group("/"))
}
