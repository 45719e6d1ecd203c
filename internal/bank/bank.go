// internal/bank/bank.go

// 本檔定義帳戶登錄表 (registry)：Bank 持有 帳號 → Account 的對應，
// 提供註冊、查詢與帳戶間轉帳。
// 採用單一互斥鎖 (sync.Mutex) 讓所有註冊表操作序列化；
// 核心模型假設單一邏輯操作者，鎖是防護欄而非必要條件。
package bank

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// Bank 為聚合根 (Aggregate Root)：管理全系統帳戶。
// - mu：序列化所有註冊表讀寫，確保跨帳戶操作（轉帳）於單一臨界區完成。
// - accts：帳戶索引表（帳號 → Account），帳號在單一 Bank 內唯一。
// Bank 對帳戶具獨佔所有權；本範圍內沒有移除帳戶的操作。
type Bank struct {
	mu    sync.Mutex
	accts map[string]Account
}

// NewBank 建立空白銀行實例（純 in-memory 狀態，無外部依賴）。
func NewBank() *Bank {
	return &Bank{accts: make(map[string]Account)}
}

// AddAccount 註冊帳戶；帳號已存在時回傳 ErrDuplicateAccount，
// 且既有帳戶不會被取代。
func (b *Bank) AddAccount(a Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[a.ID()]; ok {
		return ErrDuplicateAccount
	}
	b.accts[a.ID()] = a
	return nil
}

// GetAccount 依帳號查詢帳戶；不存在時第二回傳值為 false（純查詢，不回傳錯誤）。
// 回傳的是銀行持有的帳戶本體；多 goroutine 環境下的餘額變更
// 必須走 Bank 的 Deposit / Withdraw / ApplyInterest / TransferFunds，
// 它們皆在 mu 臨界區內執行。
func (b *Bank) GetAccount(id string) (Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[id]
	return a, ok
}

// Deposit 對指定帳戶存款：查詢與餘額變更在同一臨界區內完成，
// 避免與其他 goroutine 的操作（含轉帳）競爭。
// 帳戶不存在 → ErrAccountNotFound；其餘失敗來自帳戶自身規則。
func (b *Bank) Deposit(id string, amount decimal.Decimal) (Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if err := a.Deposit(amount); err != nil {
		return nil, err
	}
	return a, nil
}

// Withdraw 對指定帳戶提款，套用該變體自身的提款規則；
// 同樣於單一臨界區內完成。
func (b *Bank) Withdraw(id string, amount decimal.Decimal) (Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if err := a.Withdraw(amount); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyInterest 對指定儲蓄帳戶計息；非儲蓄帳戶回傳 ErrNotSavings。
func (b *Bank) ApplyInterest(id string) (Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	sav, ok := a.(*SavingsAccount)
	if !ok {
		return nil, ErrNotSavings
	}
	sav.ApplyInterest()
	return sav, nil
}

// List 回傳所有帳戶，依帳號排序以維持穩定輸出。
func (b *Bank) List() []Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Account, 0, len(b.accts))
	for _, a := range b.accts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// TransferFunds 於單一臨界區內執行轉帳：
//  1. 檢核雙方帳戶存在性（任一缺漏 → ErrAccountNotFound）
//  2. 呼叫來源帳戶 Withdraw，套用該變體自身的提款規則，
//     失敗原樣傳遞（ErrInvalidAmount / ErrInsufficientFunds /
//     ErrOverdraftExceeded / ErrLockPeriodActive）且不動任何餘額
//  3. 提款成功後呼叫目標帳戶 Deposit
//
// 注意：withdraw-then-deposit 之間沒有補償回滾。Deposit 唯一的失敗條件
// (ErrInvalidAmount) 在此不可能觸發（金額已通過提款驗證），
// 但若 Deposit 契約日後新增失敗模式，此處會成為資金遺失點。
func (b *Bank) TransferFunds(fromID, toID string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	from, ok1 := b.accts[fromID]
	to, ok2 := b.accts[toID]
	if !ok1 || !ok2 {
		return ErrAccountNotFound
	}
	if err := from.Withdraw(amount); err != nil {
		return err
	}
	if err := to.Deposit(amount); err != nil {
		return err
	}
	log.Info().Str("from", from.Holder()).Str("to", to.Holder()).
		Str("amount", money(amount)).Msg("transfer confirmed")
	return nil
}
