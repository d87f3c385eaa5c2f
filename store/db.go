package store

import (
	"errors"

	"budget/models"

	"gorm.io/gorm"
)

// DBLedger 关系表实现：monthly_budgets + transactions 两张表，
// 所有读写按 userID 过滤。驱动由 database 层决定（mysql 远端 / sqlite 本地）。
type DBLedger struct {
	db *gorm.DB
}

// NewDBLedger 创建关系表账本
func NewDBLedger(db *gorm.DB) *DBLedger {
	return &DBLedger{db: db}
}

// GetOrCreateBudget 返回指定月份的预算，不存在则以 0 懒创建
func (l *DBLedger) GetOrCreateBudget(userID uint, month, year int) (*models.MonthlyBudget, error) {
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	var budget models.MonthlyBudget
	err := l.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error
	if err == nil {
		return &budget, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backendErr("查询月度预算", err)
	}

	budget = models.MonthlyBudget{
		UserID:       userID,
		Month:        month,
		Year:         year,
		BudgetAmount: 0,
	}
	if err := l.db.Create(&budget).Error; err != nil {
		// 并发懒创建撞唯一索引时回读已有记录
		var existing models.MonthlyBudget
		if readErr := l.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
			First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, backendErr("创建月度预算", err)
	}
	return &budget, nil
}

// SetBudgetAmount 设置月度预算金额，单行原子更新
func (l *DBLedger) SetBudgetAmount(userID uint, month, year int, amount float64) (*models.MonthlyBudget, error) {
	if err := ValidateBudgetAmount(amount); err != nil {
		return nil, err
	}

	budget, err := l.GetOrCreateBudget(userID, month, year)
	if err != nil {
		return nil, err
	}

	if err := l.db.Model(budget).Update("budget_amount", amount).Error; err != nil {
		return nil, backendErr("更新月度预算", err)
	}
	budget.BudgetAmount = amount
	return budget, nil
}

// AddTransaction 新增交易记录
func (l *DBLedger) AddTransaction(userID uint, month, year int, title string, amount float64, kind string) (*models.Transaction, error) {
	trimmed, err := validateTransactionInput(title, amount)
	if err != nil {
		return nil, err
	}
	if err := ValidateKind(kind); err != nil {
		return nil, err
	}

	budget, err := l.GetOrCreateBudget(userID, month, year)
	if err != nil {
		return nil, err
	}

	tx := models.Transaction{
		UserID:          userID,
		MonthlyBudgetID: budget.ID,
		Title:           trimmed,
		Amount:          amount,
		Kind:            kind,
	}
	if err := l.db.Create(&tx).Error; err != nil {
		return nil, backendErr("创建交易记录", err)
	}
	return &tx, nil
}

// UpdateTransaction 更新交易标题与金额
func (l *DBLedger) UpdateTransaction(userID uint, id uint, title string, amount float64) (*models.Transaction, error) {
	trimmed, err := validateTransactionInput(title, amount)
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	if err := l.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, backendErr("查询交易记录", err)
	}

	updates := map[string]interface{}{
		"title":  trimmed,
		"amount": amount,
	}
	if err := l.db.Model(&tx).Updates(updates).Error; err != nil {
		return nil, backendErr("更新交易记录", err)
	}
	tx.Title = trimmed
	tx.Amount = amount
	return &tx, nil
}

// DeleteTransaction 删除交易记录
func (l *DBLedger) DeleteTransaction(userID uint, id uint) error {
	var tx models.Transaction
	if err := l.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return backendErr("查询交易记录", err)
	}
	if err := l.db.Delete(&tx).Error; err != nil {
		return backendErr("删除交易记录", err)
	}
	return nil
}

// ListTransactions 返回指定月份的交易快照，最新在前
func (l *DBLedger) ListTransactions(userID uint, month, year int) ([]models.Transaction, error) {
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	var budget models.MonthlyBudget
	err := l.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 未建立的月份没有交易，不触发懒创建
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, backendErr("查询月度预算", err)
	}

	var txs []models.Transaction
	if err := l.db.Where("monthly_budget_id = ? AND user_id = ?", budget.ID, userID).
		Order("created_at DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, backendErr("查询交易记录", err)
	}
	return txs, nil
}

// AllBudgets 返回该用户全部月份的预算快照
func (l *DBLedger) AllBudgets(userID uint) ([]models.MonthlyBudget, error) {
	var budgets []models.MonthlyBudget
	if err := l.db.Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&budgets).Error; err != nil {
		return nil, backendErr("查询全部预算", err)
	}
	return budgets, nil
}

// AllTransactions 返回该用户全部交易快照
func (l *DBLedger) AllTransactions(userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := l.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, backendErr("查询全部交易", err)
	}
	return txs, nil
}
