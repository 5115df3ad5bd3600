package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"garage/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// formatAmount 最小货币单位转显示金额
func formatAmount(amount int64) string {
	return fmt.Sprintf("%.2f", float64(amount)/100)
}

func (h *ExportHandler) queryRange(c *gin.Context) ([]store.HistoryRow, string, string, bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr == "" || endStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return nil, "", "", false
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return nil, "", "", false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return nil, "", "", false
	}

	rows, err := h.store.ListPaymentHistoryBetween(start, end)
	if err != nil {
		Fail(c, err)
		return nil, "", "", false
	}
	return rows, startStr, endStr, true
}

// ExportCSV 导出付款历史为 CSV
// @Summary 导出付款历史 (CSV)
// @Tags 导出
// @Produce text/csv
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Outcome "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, startStr, endStr, ok := h.queryRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "支出", "金额", "类别", "付款日期", "期号", "分期进度"}
	if err := writer.Write(headers); err != nil {
		Fail(c, err)
		return
	}

	for _, r := range rows {
		record := []string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			formatAmount(r.Amount),
			r.Category,
			r.PaidOn.Format("2006-01-02"),
			fmt.Sprintf("%d", r.InstallmentNumber),
			fmt.Sprintf("%d/%d", r.InstallmentsPaid, r.InstallmentCount),
		}
		if err := writer.Write(record); err != nil {
			Fail(c, err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		Fail(c, err)
		return
	}

	filename := fmt.Sprintf("payments_%s_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出付款历史为 Excel
// @Summary 导出付款历史 (Excel)
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Outcome "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, startStr, endStr, ok := h.queryRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "付款历史"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "D", 15)
	f.SetColWidth(sheetName, "E", "G", 12)

	headers := []string{"ID", "支出", "金额", "类别", "付款日期", "期号", "分期进度"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount int64
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), formatAmount(r.Amount))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.PaidOn.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.InstallmentNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), fmt.Sprintf("%d/%d", r.InstallmentsPaid, r.InstallmentCount))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		totalAmount += r.Amount
	}

	// 汇总行
	summaryRow := len(rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), formatAmount(totalAmount))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(rows)))

	filename := fmt.Sprintf("payments_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		Fail(c, err)
		return
	}
}
