// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP RESTful 介面，作為 bank 模組的應用層 (Application Layer)。
// 每個 handler 僅負責：
//  1. 接收與驗證 HTTP 請求
//  2. 建構對應的帳戶變體或呼叫 bank 層執行商業邏輯
//  3. 回傳標準化 JSON 回應（或 describe 的純文字摘要）
//
// 此設計使邏輯分層清晰：
//   - bank：純商業邏輯，與 HTTP 無關。
//   - server：處理傳輸層（Transport Layer）。
//
// 帳號由呼叫端指定；建立請求未帶 id 時由本層以 UUID 代為產生，
// 核心 API 不涉入編號產生。
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"bankaccounts/internal/bank"
)

// Server 為 HTTP 層核心結構：
// - Bank：注入商業邏輯層（帳戶登錄表）。
// - log：請求日誌用 logger。
type Server struct {
	Bank *bank.Bank
	log  zerolog.Logger
}

// NewServer 建立新的 HTTP 伺服器。
func NewServer(b *bank.Bank, log zerolog.Logger) *Server {
	return &Server{Bank: b, log: log}
}

// createAccountReq 為建立帳戶的請求格式。
// type 決定變體；變體專屬欄位僅在對應 type 時生效。
type createAccountReq struct {
	Type           string          `json:"type"`
	ID             string          `json:"id"`
	Holder         string          `json:"holder"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
	LockPeriodDays int             `json:"lock_period_days"`
}

// accounts 處理：
//   - POST /accounts  → 依 type 建立帳戶變體並註冊
//   - GET  /accounts  → 列出所有帳戶
func (s *Server) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req createAccountReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, err)
			return
		}
		// 未指定帳號時由伺服器代為產生
		id := req.ID
		if id == "" {
			id = uuid.NewString()
		}

		var acc bank.Account
		switch req.Type {
		case "", "basic":
			acc = bank.NewBasicAccount(id, req.Holder, req.Balance)
		case "savings":
			acc = bank.NewSavingsAccount(id, req.Holder, req.InterestRate, req.Balance)
		case "current":
			acc = bank.NewCurrentAccount(id, req.Holder, req.OverdraftLimit, req.Balance)
		case "fixed_deposit":
			acc = bank.NewFixedDepositAccount(id, req.Holder, req.LockPeriodDays, req.Balance, nil)
		default:
			writeErr(w, fmt.Errorf("unknown account type %q", req.Type))
			return
		}

		if err := s.Bank.AddAccount(acc); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, viewOf(acc))

	case http.MethodGet:
		all := s.Bank.List()
		views := make([]AccountView, 0, len(all))
		for _, a := range all {
			views = append(views, viewOf(a))
		}
		writeJSON(w, http.StatusOK, views)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// accountSubroutes 處理子路徑：
//
//	GET  /accounts/{id}           → 查詢帳戶
//	GET  /accounts/{id}/describe  → 多行摘要（純文字）
//	POST /accounts/{id}/deposit   → 存款
//	POST /accounts/{id}/withdraw  → 提款
//	POST /accounts/{id}/interest  → 儲蓄帳戶計息
func (s *Server) accountSubroutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/accounts/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id := parts[0]

	// GET /accounts/{id}
	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		a, ok := s.Bank.GetAccount(id)
		if !ok {
			writeErr(w, bank.ErrAccountNotFound)
			return
		}
		writeJSON(w, http.StatusOK, viewOf(a))
		return
	}

	switch parts[1] {
	case "describe": // GET /accounts/{id}/describe
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		a, ok := s.Bank.GetAccount(id)
		if !ok {
			writeErr(w, bank.ErrAccountNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(a.Describe() + "\n"))

	case "deposit": // POST /accounts/{id}/deposit
		s.mutateBalance(w, r, id, s.Bank.Deposit)

	case "withdraw": // POST /accounts/{id}/withdraw
		s.mutateBalance(w, r, id, s.Bank.Withdraw)

	case "interest": // POST /accounts/{id}/interest
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		a, err := s.Bank.ApplyInterest(id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, viewOf(a))

	default:
		http.NotFound(w, r)
	}
}

// mutateBalance 為 deposit / withdraw 的共用流程：
// 驗證方法與請求體 → 交由 Bank 於臨界區內套用操作 → 回傳最新帳戶狀態。
// 每個請求都在獨立 goroutine 上執行，餘額變更一律走 Bank 的同步方法，
// 不得直接操作 GetAccount 取回的帳戶。
func (s *Server) mutateBalance(w http.ResponseWriter, r *http.Request, id string, op func(string, decimal.Decimal) (bank.Account, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err)
		return
	}
	a, err := op(id, req.Amount)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(a))
}

// transfer 處理轉帳：
//
//	POST /transfer  → JSON {from, to, amount}
//
// 失敗種類原樣來自 bank 層（來源帳戶的變體規則亦適用），
// 成功後同時回傳兩帳戶最新狀態。
func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		From   string          `json:"from"`
		To     string          `json:"to"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err)
		return
	}
	if err := s.Bank.TransferFunds(req.From, req.To, req.Amount); err != nil {
		writeErr(w, err)
		return
	}

	fromAcc, _ := s.Bank.GetAccount(req.From)
	toAcc, _ := s.Bank.GetAccount(req.To)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "transfer success",
		"from":    viewOf(fromAcc),
		"to":      viewOf(toAcc),
	})
}

// health 提供健康檢查端點：GET /health。
// 可供監控系統或 Docker liveness probe 使用。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
