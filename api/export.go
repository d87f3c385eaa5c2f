package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"budget/database"
	"budget/middleware"
	"budget/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// collectTransactions 汇集待导出的交易：带 month/year 参数时只导出该月，否则导出全部
func (h *ExportHandler) collectTransactions(c *gin.Context) ([]models.Transaction, string, bool) {
	userID := middleware.GetCurrentUserID(c)

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr != "" || yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			BadRequest(c, "month 参数错误，取值 0-11")
			return nil, "", false
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			BadRequest(c, "year 参数错误")
			return nil, "", false
		}
		txs, err := database.Ledger.ListTransactions(userID, month, year)
		if err != nil {
			StoreError(c, err, "查询交易记录失败")
			return nil, "", false
		}
		return txs, fmt.Sprintf("transactions_%d_%02d", year, month+1), true
	}

	txs, err := database.Ledger.AllTransactions(userID)
	if err != nil {
		StoreError(c, err, "查询交易记录失败")
		return nil, "", false
	}
	return txs, "transactions_all", true
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录为 CSV
// @Description 导出当前用户的交易记录。带 month/year 参数时只导出该月，否则导出全部。金额为基准币种（USD）。
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param month query int false "月份 (0-11)"
// @Param year query int false "年份"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, filename, ok := h.collectTransactions(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "标题", "金额(USD)", "类型", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, tx := range txs {
		row := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Title,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Kind,
			tx.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出交易记录为 JSON
// @Summary 导出交易记录为 JSON
// @Description 导出当前用户的交易记录为 JSON。带 month/year 参数时只导出该月，否则导出全部。
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 (0-11)"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	txs, _, ok := h.collectTransactions(c)
	if !ok {
		return
	}

	Success(c, gin.H{
		"exported_at": time.Now().Format("2006-01-02 15:04:05"),
		"count":       len(txs),
		"list":        txs,
	})
}

// ExportExcel 导出交易记录为 XLSX
// @Summary 导出交易记录为 XLSX
// @Description 导出当前用户的交易记录为 Excel 文件。带 month/year 参数时只导出该月，否则导出全部。
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query int false "月份 (0-11)"
// @Param year query int false "年份"
// @Success 200 {file} file "XLSX 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/xlsx [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	txs, filename, ok := h.collectTransactions(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "交易记录"
	index, err := f.NewSheet(sheet)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "标题", "金额(USD)", "类型", "创建时间"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, tx := range txs {
		values := []interface{}{
			tx.ID,
			tx.Title,
			tx.Amount,
			tx.Kind,
			tx.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
