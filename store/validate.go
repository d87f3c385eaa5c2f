package store

import (
	"math"
	"strings"

	"budget/models"
)

const (
	// MaxTitleLength 标题最大长度（trim 后）
	MaxTitleLength = 200
	// MaxAmount 单笔金额上限
	MaxAmount = 999_999_999
)

// ValidateTitle 校验并规整交易标题，返回 trim 后的值
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("标题不能为空")
	}
	if len([]rune(title)) > MaxTitleLength {
		return "", NewValidationError("标题过长，最多 %d 个字符", MaxTitleLength)
	}
	return title, nil
}

// ValidateAmount 校验交易金额：必须为正、有限、不超上限、最多两位小数
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NewValidationError("金额不是有效数字")
	}
	if amount <= 0 {
		return NewValidationError("金额必须大于 0")
	}
	if amount > MaxAmount {
		return NewValidationError("金额超出上限 %d", MaxAmount)
	}
	// 最多两位小数
	cents := amount * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return NewValidationError("金额最多保留两位小数")
	}
	return nil
}

// ValidateBudgetAmount 校验预算金额：非负、有限、不超上限
func ValidateBudgetAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NewValidationError("预算金额不是有效数字")
	}
	if amount < 0 {
		return NewValidationError("预算金额不能为负")
	}
	if amount > MaxAmount {
		return NewValidationError("预算金额超出上限 %d", MaxAmount)
	}
	return nil
}

// ValidateKind 校验交易类型
func ValidateKind(kind string) error {
	if kind != models.KindExpense && kind != models.KindIncome {
		return NewValidationError("交易类型必须为 expense 或 income")
	}
	return nil
}

// ValidateMonthYear 校验月份与年份，月份取 0-11（与前端 Date.getMonth() 对齐）
func ValidateMonthYear(month, year int) error {
	if month < 0 || month > 11 {
		return NewValidationError("月份取值 0-11")
	}
	if year < 1970 || year > 2999 {
		return NewValidationError("年份不合法")
	}
	return nil
}

// validateTransactionInput 新增/更新交易的公共校验
func validateTransactionInput(title string, amount float64) (string, error) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return "", err
	}
	if err := ValidateAmount(amount); err != nil {
		return "", err
	}
	return trimmed, nil
}
