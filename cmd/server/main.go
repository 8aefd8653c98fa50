// cmd/server/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/routes"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/models"

	"github.com/gin-gonic/gin"
)

func main() {
	config.ConnectDB()
	config.ConnectRedis()

	// Автомиграция схемы. Журнал платежей append-only, но колонки
	// добавлять всё равно надо.
	if err := config.DB.AutoMigrate(&models.Student{}, &models.Course{}, &models.Payment{}); err != nil {
		slog.Error("Ошибка миграции схемы", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Сервер запускается", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Сервер остановился с ошибкой", "error", err)
		os.Exit(1)
	}
}
