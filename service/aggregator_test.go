package service

import (
	"testing"

	"budget/models"

	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	txs := []models.Transaction{
		{Title: "早餐", Amount: 10, Kind: models.KindExpense},
		{Title: "午餐", Amount: 20.5, Kind: models.KindExpense},
		{Title: "工资", Amount: 3000, Kind: models.KindIncome},
		{Title: "红包", Amount: 100, Kind: models.KindIncome},
	}

	expenses, income := Totals(txs)
	assert.Equal(t, 30.5, expenses)
	assert.Equal(t, 3100.0, income)

	// 空快照
	expenses, income = Totals(nil)
	assert.Equal(t, 0.0, expenses)
	assert.Equal(t, 0.0, income)
}

func TestSavings(t *testing.T) {
	assert.Equal(t, 379.5, Savings(500, 120.5))
	// 超支时结余为负
	assert.Equal(t, -50.0, Savings(100, 150))
	assert.Equal(t, 0.0, Savings(0, 0))
}

func TestCumulative(t *testing.T) {
	budgets := []models.MonthlyBudget{
		{Month: 11, Year: 2024, BudgetAmount: 100},
		{Month: 0, Year: 2025, BudgetAmount: 200},
	}
	txs := []models.Transaction{
		{Amount: 30, Kind: models.KindExpense},
		{Amount: 40, Kind: models.KindExpense},
		{Amount: 50, Kind: models.KindIncome},
	}

	sum := Cumulative(budgets, txs)
	assert.Equal(t, 300.0, sum.Budget)
	assert.Equal(t, 70.0, sum.Expenses)
	assert.Equal(t, 50.0, sum.Income)
	// 累计结余 = 累计预算 − 累计支出
	assert.Equal(t, 230.0, sum.Savings)

	// 无数据时各项为 0
	empty := Cumulative(nil, nil)
	assert.Equal(t, CumulativeSummary{}, empty)
}
