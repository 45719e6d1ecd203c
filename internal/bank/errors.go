// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤屬於商業邏輯層級（非系統錯誤），會由上層 HTTP handler 轉換成適當的 HTTP 狀態碼。
// 統一集中管理錯誤類別能確保 API 回傳行為一致、方便測試與維護。
// 所有錯誤皆為可復原失敗：操作立即中止且不留下部分狀態變更。

package bank

import "errors"

var (
	// ErrInvalidAmount 代表存款或提款金額非法（<= 0）。
	// 對應 HTTP 狀態碼 400 Bad Request。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds 代表餘額不足（基礎提款規則）。
	// 對應 HTTP 狀態碼 409 Conflict。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverdraftExceeded 代表活期帳戶提款超過 餘額 + 透支額度。
	// 對應 HTTP 狀態碼 409 Conflict。
	ErrOverdraftExceeded = errors.New("exceeds overdraft limit")

	// ErrLockPeriodActive 代表定期帳戶仍在鎖定期內，不允許提款。
	// 對應 HTTP 狀態碼 409 Conflict。
	ErrLockPeriodActive = errors.New("withdrawal not allowed before lock-in period ends")

	// ErrDuplicateAccount 代表註冊的帳戶編號已存在。
	// 對應 HTTP 狀態碼 409 Conflict。
	ErrDuplicateAccount = errors.New("account with this number already exists")

	// ErrAccountNotFound 代表轉帳引用了不存在的帳戶編號。
	// 對應 HTTP 狀態碼 404 Not Found。
	ErrAccountNotFound = errors.New("one or both accounts not found")

	// ErrNotSavings 代表對非儲蓄帳戶要求計息。
	// 對應 HTTP 狀態碼 400 Bad Request。
	ErrNotSavings = errors.New("not a savings account")
)
