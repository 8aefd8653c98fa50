// internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportReconciliationHandler выгружает отчёт сверки в Excel для
// бухгалтерии. Колонки повторяют JSON-контракт записи.
func (h *ReconciliationHandler) ExportReconciliationHandler(c *gin.Context) {
	report, err := h.Engine.Run(c.Request.Context(), h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reconciliation: " + err.Error()})
		return
	}

	f := excelize.NewFile()
	sheetName := "Reconciliation"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Student ID", "Student Name", "Matched Course", "Match Type",
		"Resolved Fee (INR)", "Paid To Date (INR)", "Balance (INR)", "Payment Status", "Reminder"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, rec := range report.Records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.StudentID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.StudentName)
		if rec.MatchedCourseID != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), *rec.MatchedCourseID)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(rec.MatchType))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.ResolvedFee)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rec.PaidToDate)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), rec.Balance)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), rec.PaymentStatus)
		if rec.ReminderEligible {
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), "Yes")
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), "No")
		}
	}

	// Строка сводки после пустой строки.
	summaryRow := len(report.Records) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "TOTAL OUTSTANDING")
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", summaryRow), report.Summary.TotalOutstanding)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+1), "MATCHED / UNMATCHED")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+1),
		fmt.Sprintf("%d / %d", report.Summary.Matched, report.Summary.Unmatched))

	fileName := fmt.Sprintf("reconciliation_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
