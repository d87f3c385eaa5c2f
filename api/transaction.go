package api

import (
	"strconv"

	"budget/database"
	"budget/middleware"
	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// TransactionView 交易响应：amount 为落库的基准币种值，display_amount 为展示币种换算值
type TransactionView struct {
	models.Transaction
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	DisplayAmount float64 `json:"display_amount"`
}

func newTransactionView(tx *models.Transaction, cur service.Currency) TransactionView {
	return TransactionView{
		Transaction:   *tx,
		Currency:      cur.Code,
		Symbol:        cur.Symbol,
		DisplayAmount: service.RoundCent(service.ToDisplay(tx.Amount, cur)),
	}
}

// CreateTransactionRequest 创建交易请求
// amount 为所选币种下的金额，落库前换算为基准币种（四舍五入到 0.01）。
type CreateTransactionRequest struct {
	Month    int     `json:"month" example:"0"`
	Year     int     `json:"year" binding:"required" example:"2025"`
	Title    string  `json:"title" binding:"required" example:"买菜"`
	Amount   float64 `json:"amount" binding:"required" example:"99.99"`
	Kind     string  `json:"kind" binding:"required,oneof=expense income" example:"expense"`
	Currency string  `json:"currency" example:"USD"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 在指定月份下新增一条支出或收入记录
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=TransactionView} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
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

	tx, err := database.Ledger.AddTransaction(userID, req.Month, req.Year, req.Title, canonical, req.Kind)
	if err != nil {
		StoreError(c, err, "创建交易记录失败")
		return
	}

	SuccessWithMessage(c, "创建成功", newTransactionView(tx, cur))
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 返回指定月份的交易记录，按创建时间倒序（最新在前）。可选 currency 参数返回展示币种换算值。
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param month query int true "月份 (0-11)"
// @Param year query int true "年份"
// @Param currency query string false "展示币种 (USD/EUR/INR/JPY/GBP)，默认 USD"
// @Success 200 {object} Response{data=[]TransactionView} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}
	cur, ok := parseCurrency(c)
	if !ok {
		return
	}

	txs, err := database.Ledger.ListTransactions(userID, month, year)
	if err != nil {
		StoreError(c, err, "查询交易记录失败")
		return
	}

	views := make([]TransactionView, 0, len(txs))
	for i := range txs {
		views = append(views, newTransactionView(&txs[i], cur))
	}
	Success(c, views)
}

// UpdateTransactionRequest 更新交易请求
type UpdateTransactionRequest struct {
	Title    string  `json:"title" binding:"required" example:"买菜"`
	Amount   float64 `json:"amount" binding:"required" example:"88.00"`
	Currency string  `json:"currency" example:"USD"`
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 更新指定交易的标题与金额
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Param request body UpdateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=TransactionView} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req UpdateTransactionRequest
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

	tx, err := database.Ledger.UpdateTransaction(userID, uint(id), req.Title, canonical)
	if err != nil {
		StoreError(c, err, "更新交易记录失败")
		return
	}

	SuccessWithMessage(c, "更新成功", newTransactionView(tx, cur))
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定交易记录，id 不存在时返回 404
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := database.Ledger.DeleteTransaction(userID, uint(id)); err != nil {
		StoreError(c, err, "删除交易记录失败")
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
