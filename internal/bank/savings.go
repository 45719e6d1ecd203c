// internal/bank/savings.go
//
// 儲蓄帳戶：在基礎帳戶之上增加年利率 (以百分比表示)，
// 提款規則完全沿用基礎規則，僅新增 ApplyInterest 操作。
package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SavingsAccount 儲蓄帳戶。
// 利率於建構時給定且不做驗證：負利率視為「費用」語義，刻意保留此彈性。
type SavingsAccount struct {
	BasicAccount
	rate decimal.Decimal // 百分比，例如 3.5 代表 3.5%
}

// NewSavingsAccount 建立儲蓄帳戶。rate 為百分比數值（3.5 = 3.5%）。
func NewSavingsAccount(id, holder string, rate, initial decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		BasicAccount: BasicAccount{id: id, holder: holder, balance: initial},
		rate:         rate,
	}
}

// InterestRate 回傳利率（百分比）。
func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.rate }

// ApplyInterest 計算 interest = balance × rate/100 並加入餘額，
// 成功後發出含利息金額的確認訊息。本操作無失敗情境。
func (a *SavingsAccount) ApplyInterest() {
	interest := a.balance.Mul(a.rate).Div(decimal.NewFromInt(100))
	a.balance = a.balance.Add(interest)
	log.Info().Str("holder", a.holder).Str("interest", money(interest)).Msg("interest applied")
}

// Describe 於基礎摘要後追加帳戶類型與利率。
func (a *SavingsAccount) Describe() string {
	return fmt.Sprintf("%s\nAccount Type: Savings\nInterest Rate: %s%%",
		a.BasicAccount.Describe(), a.rate.String())
}
