// internal/handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/config"
	"github.com/UniqBrio/UniqBrio-UniqBrio-Payments-sub002/internal/reconcile"

	"github.com/gin-gonic/gin"
)

const dashboardCacheKey = "dashboard:summary"
const dashboardCacheTTL = 5 * time.Minute

// DashboardSummaryResponse — сводка для главного экрана.
type DashboardSummaryResponse struct {
	Summary     reconcile.Summary `json:"summary"`
	DebtorCount int               `json:"debtorCount"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// DashboardSummaryHandler возвращает сводку сверки для дашборда.
// Кэширование — забота этого слоя, не ядра: ядро каждый раз считает
// заново, а Redis здесь просто гасит повторные пересчёты при
// одновременном обновлении дашборда несколькими админами.
func (h *ReconciliationHandler) DashboardSummaryHandler(c *gin.Context) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, dashboardCacheKey).Result()
		if err == nil {
			var resp DashboardSummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}

	debtors := 0
	for _, rec := range report.Records {
		if rec.Balance > 0 {
			debtors++
		}
	}

	resp := DashboardSummaryResponse{
		Summary:     report.Summary,
		DebtorCount: debtors,
		GeneratedAt: time.Now().UTC(),
	}

	if config.RDB != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := config.RDB.Set(config.Ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				slog.Warn("Не удалось записать сводку в кэш", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
