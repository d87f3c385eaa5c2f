package service

import (
	"fmt"
	"math"

	"budget/store"
)

// BaseCurrency 基准币种，所有金额以此落库
const BaseCurrency = "USD"

// Currency 币种定义：相对基准币种的固定汇率与展示符号
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Factor float64 `json:"factor"` // 1 基准单位 = Factor 该币种单位
}

// currencies 静态汇率表，非实时行情
var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Factor: 1},
	"EUR": {Code: "EUR", Symbol: "€", Factor: 0.92},
	"INR": {Code: "INR", Symbol: "₹", Factor: 83.0},
	"JPY": {Code: "JPY", Symbol: "¥", Factor: 150.0},
	"GBP": {Code: "GBP", Symbol: "£", Factor: 0.79},
}

// currencyOrder 列表输出顺序
var currencyOrder = []string{"USD", "EUR", "INR", "JPY", "GBP"}

// Currencies 返回全部支持的币种
func Currencies() []Currency {
	list := make([]Currency, 0, len(currencyOrder))
	for _, code := range currencyOrder {
		list = append(list, currencies[code])
	}
	return list
}

// LookupCurrency 按代码查找币种，未知代码返回 ValidationError
func LookupCurrency(code string) (Currency, error) {
	if code == "" {
		return currencies[BaseCurrency], nil
	}
	c, ok := currencies[code]
	if !ok {
		return Currency{}, store.NewValidationError("不支持的币种: %s", code)
	}
	return c, nil
}

// ToDisplay 把基准币种金额换算为展示币种金额
func ToDisplay(canonical float64, c Currency) float64 {
	return canonical * c.Factor
}

// ToCanonical 把用户录入的展示币种金额换算回基准币种
// 取整策略：换算结果四舍五入到 0.01 再落库，
// 避免非基准币种反复编辑时的浮点漂移累积。
func ToCanonical(display float64, c Currency) float64 {
	return RoundCent(display / c.Factor)
}

// RoundCent 四舍五入到 0.01
func RoundCent(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format 格式化为带符号的两位小数串，如 "$12.00"、"-₹30.50"
func Format(amount float64, c Currency) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", c.Symbol, -amount)
	}
	return fmt.Sprintf("%s%.2f", c.Symbol, amount)
}

// FormatSigned 结余展示：正值加 "+" 前缀，负值加 "-" 前缀
func FormatSigned(amount float64, c Currency) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", c.Symbol, -amount)
	}
	return fmt.Sprintf("+%s%.2f", c.Symbol, amount)
}
