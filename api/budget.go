package api

import (
	"strconv"

	"budget/database"
	"budget/middleware"
	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 月度预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建月度预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// parseMonthYear 解析 month/year 查询参数
func parseMonthYear(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		BadRequest(c, "month 参数必填，取值 0-11")
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		BadRequest(c, "year 参数必填")
		return 0, 0, false
	}
	return month, year, true
}

// parseCurrency 解析可选的 currency 查询参数，缺省为基准币种
func parseCurrency(c *gin.Context) (service.Currency, bool) {
	cur, err := service.LookupCurrency(c.Query("currency"))
	if err != nil {
		StoreError(c, err, "币种参数错误")
		return service.Currency{}, false
	}
	return cur, true
}

// BudgetResponse 预算响应：落库值为基准币种，展示值按所选币种换算
type BudgetResponse struct {
	models.MonthlyBudget
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	DisplayAmount float64 `json:"display_amount"`
}

func newBudgetResponse(b *models.MonthlyBudget, cur service.Currency) BudgetResponse {
	return BudgetResponse{
		MonthlyBudget: *b,
		Currency:      cur.Code,
		Symbol:        cur.Symbol,
		DisplayAmount: service.RoundCent(service.ToDisplay(b.BudgetAmount, cur)),
	}
}

// Get 获取月度预算（不存在则懒创建）
// @Summary 获取月度预算
// @Description 返回指定月份的预算，不存在时以 0 懒创建。month 取 0-11。可选 currency 参数返回展示币种换算值。
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param month query int true "月份 (0-11)"
// @Param year query int true "年份"
// @Param currency query string false "展示币种 (USD/EUR/INR/JPY/GBP)，默认 USD"
// @Success 200 {object} Response{data=BudgetResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budget [get]
func (h *BudgetHandler) Get(c *gin.Context) {
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

	Success(c, newBudgetResponse(budget, cur))
}

// SetBudgetRequest 设置预算请求
// amount 为所选币种（currency，缺省 USD）下的金额，落库前换算为基准币种。
type SetBudgetRequest struct {
	Month    int     `json:"month" example:"0"`
	Year     int     `json:"year" binding:"required" example:"2025"`
	Amount   float64 `json:"amount" example:"500"`
	Currency string  `json:"currency" example:"USD"`
}

// Set 设置月度预算金额
// @Summary 设置月度预算
// @Description 设置指定月份的预算金额。金额按请求中的币种换算为基准币种后存储（四舍五入到 0.01）。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=BudgetResponse} "设置成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budget [put]
func (h *BudgetHandler) Set(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	cur, err := service.LookupCurrency(req.Currency)
	if err != nil {
		StoreError(c, err, "币种参数错误")
		return
	}

	canonical := req.Amount
	if cur.Code != service.BaseCurrency {
		canonical = service.ToCanonical(req.Amount, cur)
	}

	budget, err := database.Ledger.SetBudgetAmount(userID, req.Month, req.Year, canonical)
	if err != nil {
		StoreError(c, err, "更新预算失败")
		return
	}

	SuccessWithMessage(c, "预算更新成功", newBudgetResponse(budget, cur))
}
