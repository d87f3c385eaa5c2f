package api

import (
	"budget/database"
	"budget/middleware"
	"budget/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 汇总统计处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建汇总统计处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// MonthlySummaryResponse 月度汇总响应（金额为所选展示币种）
type MonthlySummaryResponse struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Currency         string  `json:"currency"`
	Symbol           string  `json:"symbol"`
	Budget           float64 `json:"budget"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalIncome      float64 `json:"total_income"`
	Savings          float64 `json:"savings"`
	FormattedSavings string  `json:"formatted_savings"` // 正值带 "+" 前缀，负值带 "-" 前缀
}

// GetMonthly 获取月度汇总
// @Summary 获取月度汇总
// @Description 统计指定月份的预算、支出总和、收入总和与结余（结余 = 预算 − 支出，可为负）。金额按所选币种换算后返回。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query int true "月份 (0-11)"
// @Param year query int true "年份"
// @Param currency query string false "展示币种 (USD/EUR/INR/JPY/GBP)，默认 USD"
// @Success 200 {object} Response{data=MonthlySummaryResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetMonthly(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}
	cur, ok := parseCurrency(c)
	if !ok {
		return
	}

	budget, err := database.Ledger.GetOrCreateBudget(userID, month, year)
	if err != nil {
		StoreError(c, err, "获取月度预算失败")
		return
	}

	txs, err := database.Ledger.ListTransactions(userID, month, year)
	if err != nil {
		StoreError(c, err, "查询交易记录失败")
		return
	}

	expenses, income := service.Totals(txs)
	savings := service.Savings(budget.BudgetAmount, expenses)

	displaySavings := service.RoundCent(service.ToDisplay(savings, cur))
	Success(c, MonthlySummaryResponse{
		Month:            month,
		Year:             year,
		Currency:         cur.Code,
		Symbol:           cur.Symbol,
		Budget:           service.RoundCent(service.ToDisplay(budget.BudgetAmount, cur)),
		TotalExpenses:    service.RoundCent(service.ToDisplay(expenses, cur)),
		TotalIncome:      service.RoundCent(service.ToDisplay(income, cur)),
		Savings:          displaySavings,
		FormattedSavings: service.FormatSigned(displaySavings, cur),
	})
}

// CumulativeSummaryResponse 累计汇总响应（金额为所选展示币种）
type CumulativeSummaryResponse struct {
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	Budget        float64 `json:"budget"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalIncome   float64 `json:"total_income"`
	Savings       float64 `json:"savings"`
}

// GetCumulative 获取累计汇总
// @Summary 获取累计汇总
// @Description 对当前用户全部已存月份的预算与交易折叠求和，按需重算。金额按所选币种换算后返回。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param currency query string false "展示币种 (USD/EUR/INR/JPY/GBP)，默认 USD"
// @Success 200 {object} Response{data=CumulativeSummaryResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary/cumulative [get]
func (h *SummaryHandler) GetCumulative(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	cur, ok := parseCurrency(c)
	if !ok {
		return
	}

	budgets, err := database.Ledger.AllBudgets(userID)
	if err != nil {
		StoreError(c, err, "查询全部预算失败")
		return
	}
	txs, err := database.Ledger.AllTransactions(userID)
	if err != nil {
		StoreError(c, err, "查询全部交易失败")
		return
	}

	sum := service.Cumulative(budgets, txs)
	Success(c, CumulativeSummaryResponse{
		Currency:      cur.Code,
		Symbol:        cur.Symbol,
		Budget:        service.RoundCent(service.ToDisplay(sum.Budget, cur)),
		TotalExpenses: service.RoundCent(service.ToDisplay(sum.Expenses, cur)),
		TotalIncome:   service.RoundCent(service.ToDisplay(sum.Income, cur)),
		Savings:       service.RoundCent(service.ToDisplay(sum.Savings, cur)),
	})
}
