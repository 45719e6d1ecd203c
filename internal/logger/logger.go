// Package logger 提供全系統共用的結構化日誌 (structured logging) 建構函式。
// 統一由此建立 zerolog.Logger，確保所有模組輸出格式一致（時間戳 + 可讀欄位）。
// 測試可改用 NewWithWriter 將輸出導向 buffer 或 io.Discard，避免污染測試輸出。
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New 建立預設的結構化 logger：
// 使用 ConsoleWriter 輸出到 stdout，時間格式採 RFC3339，方便人工閱讀。
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter 建立寫入自訂 writer 的 logger，主要供測試使用。
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
