package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"budget/models"

	"gorm.io/gorm"
)

// LocalLedger 单机键值实现：每个月份一条记录，键由 年-月 推导，
// 值为 {budget, transactions[]} 的 JSON，落在 sqlite 的 monthly_records 表。
// 单机单用户场景，忽略 userID；互斥锁串行化所有变更，
// 持久化失败时恢复内存中的先前记录，保证内存态与持久态一致。
type LocalLedger struct {
	db      *gorm.DB
	mu      sync.Mutex
	records map[string]*monthRecord
	nextID  uint
}

// monthlyRecordRow 键值表行
type monthlyRecordRow struct {
	Key       string `gorm:"primaryKey;size:32"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName 设置表名
func (monthlyRecordRow) TableName() string {
	return "monthly_records"
}

// monthRecord 单月账本记录
type monthRecord struct {
	Month        int                  `json:"month"`
	Year         int                  `json:"year"`
	Budget       float64              `json:"budget"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewLocalLedger 创建单机账本并加载全部已有记录
func NewLocalLedger(db *gorm.DB) (*LocalLedger, error) {
	if err := db.AutoMigrate(&monthlyRecordRow{}); err != nil {
		return nil, backendErr("迁移本地账本表", err)
	}

	l := &LocalLedger{
		db:      db,
		records: make(map[string]*monthRecord),
		nextID:  1,
	}

	var rows []monthlyRecordRow
	if err := db.Find(&rows).Error; err != nil {
		return nil, backendErr("加载本地账本", err)
	}
	for _, row := range rows {
		var rec monthRecord
		if err := json.Unmarshal(row.Data, &rec); err != nil {
			return nil, backendErr("解析本地账本记录", err)
		}
		for _, tx := range rec.Transactions {
			if tx.ID >= l.nextID {
				l.nextID = tx.ID + 1
			}
		}
		r := rec
		l.records[row.Key] = &r
	}
	return l, nil
}

// recordKey 由年月推导存储键
func recordKey(month, year int) string {
	return fmt.Sprintf("budget-%d-%d", year, month)
}

// getOrCreateLocked 取出或新建单月记录，调用方需持有锁
func (l *LocalLedger) getOrCreateLocked(month, year int) (*monthRecord, error) {
	key := recordKey(month, year)
	if rec, ok := l.records[key]; ok {
		return rec, nil
	}
	rec := &monthRecord{Month: month, Year: year, Budget: 0}
	if err := l.persistLocked(key, rec); err != nil {
		return nil, err
	}
	l.records[key] = rec
	return rec, nil
}

// persistLocked 序列化并落库单月记录，调用方需持有锁
func (l *LocalLedger) persistLocked(key string, rec *monthRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return backendErr("序列化本地账本记录", err)
	}
	row := monthlyRecordRow{Key: key, Data: data}
	if err := l.db.Save(&row).Error; err != nil {
		return backendErr("写入本地账本记录", err)
	}
	return nil
}

// snapshot 复制单月记录，变更前捕获用于失败回滚
func (rec *monthRecord) snapshot() monthRecord {
	cp := *rec
	cp.Transactions = append([]models.Transaction(nil), rec.Transactions...)
	return cp
}

// toBudget 以单月记录合成预算对象
func (rec *monthRecord) toBudget(userID uint) *models.MonthlyBudget {
	return &models.MonthlyBudget{
		UserID:       userID,
		Month:        rec.Month,
		Year:         rec.Year,
		BudgetAmount: rec.Budget,
	}
}

// GetOrCreateBudget 返回指定月份的预算，不存在则以 0 懒创建
func (l *LocalLedger) GetOrCreateBudget(userID uint, month, year int) (*models.MonthlyBudget, error) {
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, err := l.getOrCreateLocked(month, year)
	if err != nil {
		return nil, err
	}
	return rec.toBudget(userID), nil
}

// SetBudgetAmount 设置月度预算金额
func (l *LocalLedger) SetBudgetAmount(userID uint, month, year int, amount float64) (*models.MonthlyBudget, error) {
	if err := ValidateBudgetAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, err := l.getOrCreateLocked(month, year)
	if err != nil {
		return nil, err
	}

	prev := rec.snapshot()
	rec.Budget = amount
	if err := l.persistLocked(recordKey(month, year), rec); err != nil {
		*rec = prev
		return nil, err
	}
	return rec.toBudget(userID), nil
}

// AddTransaction 新增交易记录
func (l *LocalLedger) AddTransaction(userID uint, month, year int, title string, amount float64, kind string) (*models.Transaction, error) {
	trimmed, err := validateTransactionInput(title, amount)
	if err != nil {
		return nil, err
	}
	if err := ValidateKind(kind); err != nil {
		return nil, err
	}
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, err := l.getOrCreateLocked(month, year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := models.Transaction{
		ID:        l.nextID,
		UserID:    userID,
		Title:     trimmed,
		Amount:    amount,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	prev := rec.snapshot()
	rec.Transactions = append(rec.Transactions, tx)
	if err := l.persistLocked(recordKey(month, year), rec); err != nil {
		*rec = prev
		return nil, err
	}
	l.nextID++
	return &tx, nil
}

// findLocked 按交易 id 定位所在月份记录与下标，调用方需持有锁
func (l *LocalLedger) findLocked(id uint) (*monthRecord, int) {
	for _, rec := range l.records {
		for i := range rec.Transactions {
			if rec.Transactions[i].ID == id {
				return rec, i
			}
		}
	}
	return nil, -1
}

// UpdateTransaction 更新交易标题与金额
func (l *LocalLedger) UpdateTransaction(userID uint, id uint, title string, amount float64) (*models.Transaction, error) {
	trimmed, err := validateTransactionInput(title, amount)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, i := l.findLocked(id)
	if rec == nil {
		return nil, ErrNotFound
	}

	prev := rec.snapshot()
	rec.Transactions[i].Title = trimmed
	rec.Transactions[i].Amount = amount
	rec.Transactions[i].UpdatedAt = time.Now()
	if err := l.persistLocked(recordKey(rec.Month, rec.Year), rec); err != nil {
		*rec = prev
		return nil, err
	}
	tx := rec.Transactions[i]
	return &tx, nil
}

// DeleteTransaction 删除交易记录
func (l *LocalLedger) DeleteTransaction(userID uint, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, i := l.findLocked(id)
	if rec == nil {
		return ErrNotFound
	}

	prev := rec.snapshot()
	rec.Transactions = append(rec.Transactions[:i], rec.Transactions[i+1:]...)
	if err := l.persistLocked(recordKey(rec.Month, rec.Year), rec); err != nil {
		*rec = prev
		return err
	}
	return nil
}

// ListTransactions 返回指定月份的交易快照，最新在前
func (l *LocalLedger) ListTransactions(userID uint, month, year int) ([]models.Transaction, error) {
	if err := ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[recordKey(month, year)]
	if !ok {
		return []models.Transaction{}, nil
	}
	txs := append([]models.Transaction(nil), rec.Transactions...)
	sortTransactionsDesc(txs)
	return txs, nil
}

// AllBudgets 返回全部月份的预算快照
func (l *LocalLedger) AllBudgets(userID uint) ([]models.MonthlyBudget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets := make([]models.MonthlyBudget, 0, len(l.records))
	for _, rec := range l.records {
		budgets = append(budgets, *rec.toBudget(userID))
	}
	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Year != budgets[j].Year {
			return budgets[i].Year < budgets[j].Year
		}
		return budgets[i].Month < budgets[j].Month
	})
	return budgets, nil
}

// AllTransactions 返回全部交易快照
func (l *LocalLedger) AllTransactions(userID uint) ([]models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var txs []models.Transaction
	for _, rec := range l.records {
		txs = append(txs, rec.Transactions...)
	}
	sortTransactionsDesc(txs)
	return txs, nil
}

// sortTransactionsDesc 按创建时间倒序，时间相同按 id 倒序
func sortTransactionsDesc(txs []models.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].CreatedAt.Equal(txs[j].CreatedAt) {
			return txs[i].CreatedAt.After(txs[j].CreatedAt)
		}
		return txs[i].ID > txs[j].ID
	})
}
