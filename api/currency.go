package api

import (
	"budget/service"

	"github.com/gin-gonic/gin"
)

// CurrencyHandler 币种处理器
type CurrencyHandler struct{}

// NewCurrencyHandler 创建币种处理器
func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// List 获取支持的币种列表
// @Summary 获取支持的币种列表
// @Description 返回全部支持的展示币种及其固定汇率与符号。汇率为相对基准币种（USD）的静态常量，非实时行情。
// @Tags 币种
// @Produce json
// @Success 200 {object} Response{data=[]service.Currency} "获取成功"
// @Router /api/v1/currencies [get]
func (h *CurrencyHandler) List(c *gin.Context) {
	Success(c, service.Currencies())
}
