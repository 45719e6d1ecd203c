// internal/bank/fixed.go
//
// 定期存款帳戶：建構時記錄起始時刻 (createdAt)，
// 在 createdAt + lockPeriodDays 之前完全禁止提款；
// 解鎖後回歸基礎提款規則。鎖定期以「整日 × 24 小時」計算。
package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FixedDepositAccount 定期存款帳戶。
type FixedDepositAccount struct {
	BasicAccount
	lockPeriodDays int
	createdAt      time.Time
	clock          Clock
}

// NewFixedDepositAccount 建立定期帳戶並以 clock 擷取建立時刻。
// clock 為 nil 時使用 SystemClock。
func NewFixedDepositAccount(id, holder string, lockPeriodDays int, initial decimal.Decimal, clock Clock) *FixedDepositAccount {
	if clock == nil {
		clock = SystemClock
	}
	return &FixedDepositAccount{
		BasicAccount:   BasicAccount{id: id, holder: holder, balance: initial},
		lockPeriodDays: lockPeriodDays,
		createdAt:      clock(),
		clock:          clock,
	}
}

// LockPeriodDays 回傳鎖定天數。
func (a *FixedDepositAccount) LockPeriodDays() int { return a.lockPeriodDays }

// UnlockAt 回傳解鎖時刻：createdAt + lockPeriodDays × 24h。
func (a *FixedDepositAccount) UnlockAt() time.Time {
	return a.createdAt.Add(time.Duration(a.lockPeriodDays) * 24 * time.Hour)
}

// Withdraw 覆寫提款規則：鎖定期內一律回傳 ErrLockPeriodActive，
// 與金額、餘額無關；解鎖後委派給基礎規則
// （ErrInvalidAmount / ErrInsufficientFunds 依舊適用）。
func (a *FixedDepositAccount) Withdraw(amount decimal.Decimal) error {
	if a.clock().Before(a.UnlockAt()) {
		return ErrLockPeriodActive
	}
	return a.BasicAccount.Withdraw(amount)
}

// Describe 於基礎摘要後追加帳戶類型與解鎖日期（僅日期粒度）。
func (a *FixedDepositAccount) Describe() string {
	return fmt.Sprintf("%s\nAccount Type: Fixed Deposit\nUnlock Date: %s",
		a.BasicAccount.Describe(), a.UnlockAt().Format("2006-01-02"))
}
