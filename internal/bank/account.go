// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 能力介面與 BasicAccount 基礎實作；
// 三種變體（Savings / Current / FixedDeposit）以內嵌 (embedding) 方式
// 共用基礎行為，並各自覆寫提款規則與描述文字，不含任何 HTTP 細節。
//
// 金額一律使用 decimal.Decimal（精確十進位），避免浮點誤差；
// 餘額只能透過通過驗證的 Deposit / Withdraw / ApplyInterest 變更。

package bank

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"bankaccounts/internal/logger"
)

// log 為套件層級 logger：存提款等操作成功後由此發出確認訊息。
// 訊息為人類可讀格式，呼叫端不應解析其內容。
var log = logger.New()

// SetLogger 替換套件 logger（例如 main 注入統一實例、測試導向 io.Discard）。
func SetLogger(l zerolog.Logger) { log = l }

// Account 為帳戶的共同能力介面。
// 四種具體型別（Basic / Savings / Current / FixedDeposit）皆實作此介面，
// Bank 僅透過介面操作帳戶，不關心變體細節。
type Account interface {
	// ID 回傳帳戶唯一編號。
	ID() string
	// Holder 回傳帳戶持有人顯示名稱。
	Holder() string
	// Balance 回傳目前餘額；無副作用、永不失敗。
	Balance() decimal.Decimal
	// Deposit 存款：金額需 > 0，否則回傳 ErrInvalidAmount。
	Deposit(amount decimal.Decimal) error
	// Withdraw 提款：規則依變體而異，詳見各型別說明。
	Withdraw(amount decimal.Decimal) error
	// Describe 回傳多行帳戶摘要文字，僅供顯示，不可用於比對或持久化。
	Describe() string
}

// BasicAccount 為基礎帳戶：提款需由餘額全額支應。
// 其餘三種帳戶皆內嵌本型別以共用存款、餘額與描述行為。
type BasicAccount struct {
	id      string
	holder  string
	balance decimal.Decimal
}

// NewBasicAccount 建立基礎帳戶。初始餘額不做驗證（與既有行為一致）。
func NewBasicAccount(id, holder string, initial decimal.Decimal) *BasicAccount {
	return &BasicAccount{id: id, holder: holder, balance: initial}
}

func (a *BasicAccount) ID() string               { return a.id }
func (a *BasicAccount) Holder() string           { return a.holder }
func (a *BasicAccount) Balance() decimal.Decimal { return a.balance }

// Deposit 存款：金額需 > 0；成功後發出確認訊息。
// 任何失敗皆不改變餘額。
func (a *BasicAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	log.Info().Str("holder", a.holder).Str("amount", money(amount)).Msg("deposit confirmed")
	return nil
}

// Withdraw 提款（基礎規則）：金額需 > 0 且不得超過餘額。
// 任何失敗皆不改變餘額。
func (a *BasicAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	log.Info().Str("holder", a.holder).Str("amount", money(amount)).Msg("withdrawal confirmed")
	return nil
}

// Describe 回傳帳號、持有人與餘額的多行摘要。
// 變體型別會在此基礎上追加各自的欄位。
func (a *BasicAccount) Describe() string {
	return fmt.Sprintf("Account Number: %s\nAccount Holder: %s\nBalance: %s",
		a.id, a.holder, money(a.balance))
}

// money 以貨幣格式輸出金額（兩位小數，加 $ 前綴），僅供顯示。
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
