// cmd/server/main.go

// 本服務提供帳戶建立（四種變體）、存提款、計息、轉帳等 RESTful API。
// 此檔案負責初始化模組（logger, bank, server）並啟動 HTTP 伺服器；
// 設定由 .env / 環境變數載入，收到 SIGINT/SIGTERM 時優雅關閉。

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bankaccounts/internal/bank"
	"bankaccounts/internal/logger"
	"bankaccounts/internal/server"
)

func main() {
	log := logger.New()

	// 載入 .env（不存在時直接使用環境變數，非致命）
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// 初始化銀行核心模組，並讓領域層的確認訊息走同一個 logger
	bank.SetLogger(log)
	b := bank.NewBank()
	s := server.NewServer(b, log)

	srv := &http.Server{Addr: addr, Handler: s.Router()}

	// 啟動背景 goroutine 監聽 SIGINT/SIGTERM 訊號，優雅關閉伺服器
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	log.Info().Str("addr", addr).Msg("bank server running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server terminated")
	}
}
