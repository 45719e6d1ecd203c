// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式與「領域錯誤 → HTTP 狀態碼」的對應。
// 透過集中管理 JSON 與錯誤輸出，可確保整個 REST API 的一致性與可維護性。
// 設計理念：
//   - 「成功回應」使用標準 JSON 編碼（Content-Type: application/json）。
//   - 「錯誤回應」統一由 writeErr 輸出，狀態碼由 statusOf 依 sentinel 錯誤判定。
//   - Account 為介面型別無法直接序列化，統一轉換為 AccountView DTO。
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"bankaccounts/internal/bank"
)

// AccountView 為帳戶的 JSON 輸出格式。
// 變體專屬欄位僅在對應型別時出現（omitempty）。
type AccountView struct {
	ID             string           `json:"id"`
	Holder         string           `json:"holder"`
	Balance        decimal.Decimal  `json:"balance"`
	Type           string           `json:"type"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
	LockPeriodDays *int             `json:"lock_period_days,omitempty"`
	UnlockDate     string           `json:"unlock_date,omitempty"`
}

// viewOf 依具體型別組出對應的 AccountView。
func viewOf(a bank.Account) AccountView {
	v := AccountView{ID: a.ID(), Holder: a.Holder(), Balance: a.Balance(), Type: "basic"}
	switch acc := a.(type) {
	case *bank.SavingsAccount:
		v.Type = "savings"
		r := acc.InterestRate()
		v.InterestRate = &r
	case *bank.CurrentAccount:
		v.Type = "current"
		l := acc.OverdraftLimit()
		v.OverdraftLimit = &l
	case *bank.FixedDepositAccount:
		v.Type = "fixed_deposit"
		d := acc.LockPeriodDays()
		v.LockPeriodDays = &d
		v.UnlockDate = acc.UnlockAt().Format("2006-01-02")
	}
	return v
}

// writeJSON 統一輸出成功回應。
// - code：HTTP 狀態碼（例如 200, 201）
// - v：可被 JSON 序列化的物件（map、struct、slice 皆可）
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 統一輸出錯誤回應，狀態碼由 statusOf 決定。
// err.Error() 為人類可讀訊息，呼叫端不應解析。
func writeErr(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

// statusOf 將領域錯誤映射為 HTTP 狀態碼：
//   - 404：帳戶不存在
//   - 409：重複帳號、資金類衝突（餘額不足 / 透支超限 / 鎖定期）
//   - 400：其他（非法金額、壞請求）
func statusOf(err error) int {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, bank.ErrDuplicateAccount),
		errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, bank.ErrOverdraftExceeded),
		errors.Is(err, bank.ErrLockPeriodActive):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
