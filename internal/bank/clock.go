// internal/bank/clock.go
//
// 時間來源抽象。FixedDepositAccount 的鎖定期判斷依賴「現在時刻」，
// 若直接綁定 time.Now 將無法以確定性方式測試；
// 因此以可注入的函式型別作為時鐘，測試可自行推進虛擬時間。
package bank

import "time"

// Clock 回傳現在時刻。生產環境使用 SystemClock，測試可注入假時鐘。
type Clock func() time.Time

// SystemClock 為預設時鐘，直接讀取系統壁鐘。
func SystemClock() time.Time { return time.Now() }
