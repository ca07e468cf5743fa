package api

import (
	"ledger/models"

	"github.com/gin-gonic/gin"
)

// SummaryRequest 汇总筛选条件，均为可选
type SummaryRequest struct {
	Category  string `form:"category" example:"Food"`
	StartDate string `form:"start_date" example:"2024-01-01"`
	EndDate   string `form:"end_date" example:"2024-01-31"`
}

// SummaryResponse 收入/支出汇总返回
type SummaryResponse struct {
	TotalIncome  int `json:"total_income" example:"5000"`
	TotalExpense int `json:"total_expense" example:"1234"`
	Balance      int `json:"balance" example:"3766"`
}

type typeTotal struct {
	Type  string
	Total int
}

// Summary 获取收入和支出汇总
// @Summary 获取收入/支出汇总
// @Description 按时间范围和类别统计收入总和、支出总和与结余。不传时间则统计全部时间。
// @Tags 交易
// @Produce json
// @Param category query string false "类别名称"
// @Param start_date query string false "开始时间 (2024-01-01)"
// @Param end_date query string false "结束时间 (2024-01-31)"
// @Success 200 {object} SummaryResponse "获取成功"
// @Failure 422 {object} ErrorResponse "时间格式错误"
// @Router /transactions/summary/ [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		UnprocessableEntity(c, err.Error())
		return
	}

	filter := transactionFilter{}
	if err := filter.setRange(req.StartDate, req.EndDate); err != nil {
		UnprocessableEntity(c, err.Error())
		return
	}
	if req.Category != "" {
		filter.Category = &req.Category
	}

	var totals []typeTotal
	query := filter.apply(h.db.WithContext(c.Request.Context()).Model(&models.Transaction{}))
	if err := query.Select("type, COALESCE(SUM(amount), 0) AS total").Group("type").Scan(&totals).Error; err != nil {
		InternalError(c, err, "统计失败")
		return
	}

	var resp SummaryResponse
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			resp.TotalIncome = t.Total
		case models.TransactionTypeExpense:
			resp.TotalExpense = t.Total
		}
	}
	resp.Balance = resp.TotalIncome - resp.TotalExpense
	Success(c, resp)
}
