package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ledger/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	exportFormatCSV  = "csv"
	exportFormatXLSX = "xlsx"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{"ID", "Amount", "Type", "Category", "Description", "Date", "Category ID"}

// ExportHandler 导出处理器
type ExportHandler struct {
	db *gorm.DB
}

// NewExportHandler 创建导出处理器
func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

// ExportRequest 导出筛选条件，均为可选
type ExportRequest struct {
	Format    string `form:"format" example:"csv"`
	Type      string `form:"type" example:"expense"`
	Category  string `form:"category" example:"Food"`
	StartDate string `form:"start_date" example:"2024-01-01"`
	EndDate   string `form:"end_date" example:"2024-01-31"`
}

// Export 导出交易
// @Summary 导出交易
// @Description 按可选条件筛选交易并导出为 CSV 或 Excel 文件
// @Tags 导出
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "导出格式 csv/xlsx" default(csv)
// @Param type query string false "交易类型 income/expense"
// @Param category query string false "类别名称"
// @Param start_date query string false "开始时间 (2024-01-01)"
// @Param end_date query string false "结束时间 (2024-01-31)"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse "格式或交易类型错误"
// @Failure 422 {object} ErrorResponse "时间格式错误"
// @Router /transactions/export/ [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		UnprocessableEntity(c, err.Error())
		return
	}
	if req.Format == "" {
		req.Format = exportFormatCSV
	}
	if req.Format != exportFormatCSV && req.Format != exportFormatXLSX {
		BadRequest(c, fmt.Sprintf("Invalid format: %s. should be: ['csv', 'xlsx']", req.Format))
		return
	}

	filter := transactionFilter{}
	if err := filter.setRange(req.StartDate, req.EndDate); err != nil {
		UnprocessableEntity(c, err.Error())
		return
	}
	if req.Type != "" {
		if !models.IsValidTransactionType(req.Type) {
			BadRequest(c, models.InvalidTransactionTypeMessage(req.Type))
			return
		}
		filter.Type = &req.Type
	}
	if req.Category != "" {
		filter.Category = &req.Category
	}

	list, err := filter.find(h.db.WithContext(c.Request.Context()).Order("date ASC"))
	if err != nil {
		InternalError(c, err, "查询数据失败")
		return
	}

	var (
		data        []byte
		contentType string
	)
	if req.Format == exportFormatXLSX {
		data, err = buildXLSX(list)
		contentType = xlsxContentType
	} else {
		data, err = buildCSV(list)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		InternalError(c, err, "生成导出文件失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", time.Now().UTC().Format("20060102150405"), req.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

func exportRow(t models.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(t.ID), 10),
		strconv.Itoa(t.Amount),
		t.Type,
		t.Category,
		t.Description,
		t.Date.UTC().Format(time.RFC3339),
		strconv.FormatUint(uint64(t.CategoryID), 10),
	}
}

func buildCSV(list []models.Transaction) ([]byte, error) {
	buf := new(bytes.Buffer)
	// 添加 BOM 以便 Excel 正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := writer.Write(exportRow(t)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(list []models.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transactions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheetName, "A", "A", 8)
	_ = f.SetColWidth(sheetName, "B", "C", 12)
	_ = f.SetColWidth(sheetName, "D", "E", 24)
	_ = f.SetColWidth(sheetName, "F", "F", 22)
	_ = f.SetColWidth(sheetName, "G", "G", 12)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
		return nil, err
	}

	var income, expense int
	for i, t := range list {
		row := i + 2
		values := []interface{}{t.ID, t.Amount, t.Type, t.Category, t.Description, t.Date.UTC().Format(time.RFC3339), t.CategoryID}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income += t.Amount
		case models.TransactionTypeExpense:
			expense += t.Amount
		}
	}

	// 汇总行
	summaryRow := len(list) + 3
	summary := [][2]interface{}{
		{"Total income", income},
		{"Total expense", expense},
		{"Balance", income - expense},
	}
	for i, item := range summary {
		row := summaryRow + i
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item[0])
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item[1])
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), summaryStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
