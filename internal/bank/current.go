// internal/bank/current.go
//
// 活期透支帳戶：提款上限為「餘額 + 透支額度」，
// 餘額可為負值，最低至 -overdraftLimit。
package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrentAccount 活期帳戶（可透支）。
type CurrentAccount struct {
	BasicAccount
	overdraftLimit decimal.Decimal
}

// NewCurrentAccount 建立活期帳戶。limit 為透支額度（≥ 0，依慣例不驗證）。
func NewCurrentAccount(id, holder string, limit, initial decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		BasicAccount:   BasicAccount{id: id, holder: holder, balance: initial},
		overdraftLimit: limit,
	}
}

// OverdraftLimit 回傳透支額度。
func (a *CurrentAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// Withdraw 覆寫基礎提款規則：金額需 > 0 且不得超過 餘額 + 透支額度；
// 成功後餘額可為負。任何失敗皆不改變餘額。
func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance.Add(a.overdraftLimit)) {
		return ErrOverdraftExceeded
	}
	a.balance = a.balance.Sub(amount)
	log.Info().Str("holder", a.holder).Str("amount", money(amount)).
		Msg("withdrawal confirmed (overdraft allowed)")
	return nil
}

// Describe 於基礎摘要後追加帳戶類型與透支額度。
func (a *CurrentAccount) Describe() string {
	return fmt.Sprintf("%s\nAccount Type: Current\nOverdraft Limit: %s",
		a.BasicAccount.Describe(), money(a.overdraftLimit))
}
