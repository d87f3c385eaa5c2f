package service

import "budget/models"

// Totals 对交易快照按类型求和，金额已是基准币种
func Totals(txs []models.Transaction) (expenses, income float64) {
	for _, tx := range txs {
		switch tx.Kind {
		case models.KindExpense:
			expenses += tx.Amount
		case models.KindIncome:
			income += tx.Amount
		}
	}
	return expenses, income
}

// Savings 结余 = 预算 − 支出总和，可为负
func Savings(budget, expenses float64) float64 {
	return budget - expenses
}

// CumulativeSummary 全部月份的累计汇总
type CumulativeSummary struct {
	Budget   float64 `json:"budget"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
	Savings  float64 `json:"savings"`
}

// Cumulative 对全部月份的预算与交易快照折叠，按需重算而非增量维护
func Cumulative(budgets []models.MonthlyBudget, txs []models.Transaction) CumulativeSummary {
	var totalBudget float64
	for _, b := range budgets {
		totalBudget += b.BudgetAmount
	}
	expenses, income := Totals(txs)
	return CumulativeSummary{
		Budget:   totalBudget,
		Expenses: expenses,
		Income:   income,
		Savings:  Savings(totalBudget, expenses),
	}
}
