// internal/bank/bank_test.go
//
// 本檔為 Bank 登錄表的單元與整合測試。
// 覆蓋：帳戶註冊（含重複帳號）、查詢、轉帳（含各變體失敗原樣傳遞）、
// 轉帳前後總額守恆，以及完整使用情境的端對端重演。

package bank

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddAndGetAccount 驗證註冊與查詢：
// 帳號唯一、重複註冊失敗且不取代既有帳戶、查無帳戶時回傳 false。
func TestAddAndGetAccount(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("100"))))

	// 重複帳號 → ErrDuplicateAccount，且原帳戶保持不變
	err := b.AddAccount(NewBasicAccount("A1", "Mallory", dec("999")))
	require.ErrorIs(t, err, ErrDuplicateAccount)
	got, ok := b.GetAccount("A1")
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Holder())
	assert.True(t, got.Balance().Equal(dec("100")))

	// 查無帳戶
	_, ok = b.GetAccount("nope")
	assert.False(t, ok)
}

// TestList 驗證 List 回傳全部帳戶並依帳號排序。
func TestList(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("B2", "Bob", dec("0"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("0"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("C3", "Carol", dec("0"))))

	all := b.List()
	require.Len(t, all, 3)
	assert.Equal(t, "A1", all[0].ID())
	assert.Equal(t, "B2", all[1].ID())
	assert.Equal(t, "C3", all[2].ID())
}

// TestBankDepositWithdraw 驗證 Bank 層的存提款入口：
// 查詢與餘額變更於同一臨界區完成，失敗種類來自帳戶自身規則。
func TestBankDepositWithdraw(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("100"))))

	a, err := b.Deposit("A1", dec("50"))
	require.NoError(t, err)
	assert.True(t, a.Balance().Equal(dec("150")))

	a, err = b.Withdraw("A1", dec("30"))
	require.NoError(t, err)
	assert.True(t, a.Balance().Equal(dec("120")))

	_, err = b.Deposit("ghost", dec("1"))
	require.ErrorIs(t, err, ErrAccountNotFound)
	_, err = b.Withdraw("ghost", dec("1"))
	require.ErrorIs(t, err, ErrAccountNotFound)
	_, err = b.Withdraw("A1", dec("9999"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	_, err = b.Deposit("A1", dec("0"))
	require.ErrorIs(t, err, ErrInvalidAmount)
}

// TestBankApplyInterest 驗證 Bank 層計息入口：
// 儲蓄帳戶正常計息；非儲蓄帳戶 → ErrNotSavings；查無帳戶 → ErrAccountNotFound。
func TestBankApplyInterest(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewSavingsAccount("S1", "Alice", dec("3.5"), dec("1500"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Bob", dec("100"))))

	a, err := b.ApplyInterest("S1")
	require.NoError(t, err)
	assert.True(t, a.Balance().Equal(dec("1552.5")))

	_, err = b.ApplyInterest("A1")
	require.ErrorIs(t, err, ErrNotSavings)
	_, err = b.ApplyInterest("ghost")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// TestConcurrentDepositsRaceSafety 驗證多 goroutine 同時經 Bank 存款
// 仍具資料一致性：50 筆各 1 元的並行存款後餘額必為 50，無遺失更新。
func TestConcurrentDepositsRaceSafety(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("0"))))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := b.Deposit("A1", dec("1")); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
	}
	wg.Wait()

	a, _ := b.GetAccount("A1")
	assert.True(t, a.Balance().Equal(dec("50")), "balance=%s want=50", a.Balance())
}

// TestConcurrentTransfersAtomicity 驗證高併發下轉帳與存提款互不踩踏：
// 雙向各 100 次 1 元轉帳混合 100 筆存款後，總額精確等於 初始 + 存款總和。
func TestConcurrentTransfersAtomicity(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("1000"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("B2", "Bob", dec("1000"))))

	const n = 100
	var wg sync.WaitGroup
	wg.Add(3 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if err := b.TransferFunds("A1", "B2", dec("1")); err != nil {
				t.Errorf("A1->B2: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := b.TransferFunds("B2", "A1", dec("1")); err != nil {
				t.Errorf("B2->A1: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := b.Deposit("A1", dec("1")); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	a, _ := b.GetAccount("A1")
	c, _ := b.GetAccount("B2")
	assert.True(t, a.Balance().Add(c.Balance()).Equal(dec("2100")),
		"total=%s want=2100", a.Balance().Add(c.Balance()))
}

// TestTransferFunds 驗證正常轉帳：來源減少、目標增加、總額守恆。
func TestTransferFunds(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("1000"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("B2", "Bob", dec("500"))))

	require.NoError(t, b.TransferFunds("A1", "B2", dec("300")))

	a, _ := b.GetAccount("A1")
	c, _ := b.GetAccount("B2")
	assert.True(t, a.Balance().Equal(dec("700")))
	assert.True(t, c.Balance().Equal(dec("800")))
	assert.True(t, a.Balance().Add(c.Balance()).Equal(dec("1500")), "net balance conserved")
}

// TestTransferFundsNotFound 驗證任一端帳號不存在時回傳 ErrAccountNotFound，
// 且兩邊餘額皆不變。
func TestTransferFundsNotFound(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("1000"))))

	require.ErrorIs(t, b.TransferFunds("A1", "ghost", dec("10")), ErrAccountNotFound)
	require.ErrorIs(t, b.TransferFunds("ghost", "A1", dec("10")), ErrAccountNotFound)
	require.ErrorIs(t, b.TransferFunds("ghost", "phantom", dec("10")), ErrAccountNotFound)

	a, _ := b.GetAccount("A1")
	assert.True(t, a.Balance().Equal(dec("1000")))
}

// TestTransferFundsPropagatesSourceErrors 驗證來源帳戶的提款失敗
// 會原樣傳遞給呼叫端，且不動任何餘額。
func TestTransferFundsPropagatesSourceErrors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("100"))))
	require.NoError(t, b.AddAccount(NewCurrentAccount("C1", "Bob", dec("50"), dec("0"))))
	require.NoError(t, b.AddAccount(NewFixedDepositAccount("F1", "Charlie", 30, dec("5000"), func() time.Time { return now })))

	// 基礎規則：餘額不足
	require.ErrorIs(t, b.TransferFunds("A1", "C1", dec("101")), ErrInsufficientFunds)
	// 透支規則：超過 餘額 + 額度
	require.ErrorIs(t, b.TransferFunds("C1", "A1", dec("51")), ErrOverdraftExceeded)
	// 鎖定期規則
	require.ErrorIs(t, b.TransferFunds("F1", "A1", dec("10")), ErrLockPeriodActive)
	// 非法金額
	require.ErrorIs(t, b.TransferFunds("A1", "C1", dec("0")), ErrInvalidAmount)

	for id, want := range map[string]string{"A1": "100", "C1": "0", "F1": "5000"} {
		a, _ := b.GetAccount(id)
		assert.True(t, a.Balance().Equal(dec(want)), "%s balance changed on failed transfer", id)
	}
}

// TestTransferFundsSameAccount 驗證同帳戶轉帳被允許（既有行為）：
// 先提後存，淨額為零，但來源的提款規則仍然適用。
func TestTransferFundsSameAccount(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("100"))))

	require.NoError(t, b.TransferFunds("A1", "A1", dec("60")))
	a, _ := b.GetAccount("A1")
	assert.True(t, a.Balance().Equal(dec("100")))

	require.ErrorIs(t, b.TransferFunds("A1", "A1", dec("101")), ErrInsufficientFunds)
}

// TestTransferFundsUsesOverdraftRoom 驗證來源為活期帳戶時，
// 轉帳可動用透支空間並使餘額轉負。
func TestTransferFundsUsesOverdraftRoom(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.AddAccount(NewCurrentAccount("C1", "Bob", dec("500"), dec("200"))))
	require.NoError(t, b.AddAccount(NewBasicAccount("A1", "Alice", dec("0"))))

	require.NoError(t, b.TransferFunds("C1", "A1", dec("600")))
	c, _ := b.GetAccount("C1")
	a, _ := b.GetAccount("A1")
	assert.True(t, c.Balance().Equal(dec("-400")))
	assert.True(t, a.Balance().Equal(dec("600")))
}

// TestEndToEndScenario 重演完整情境：
// 儲蓄帳戶存款、計息、提款；活期帳戶透支提款與回補；
// 定期帳戶提前提款失敗；最後由儲蓄轉帳至活期。
func TestEndToEndScenario(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	b := NewBank()

	savings := NewSavingsAccount("S1001", "Alice", dec("3.5"), dec("1000"))
	current := NewCurrentAccount("C1001", "Bob", dec("500"), dec("200"))
	fixed := NewFixedDepositAccount("F1001", "Charlie", 30, dec("5000"), func() time.Time { return now })

	require.NoError(t, b.AddAccount(savings))
	require.NoError(t, b.AddAccount(current))
	require.NoError(t, b.AddAccount(fixed))

	// 儲蓄：1000 + 500 = 1500；計息 +52.5 = 1552.5；提款 -200 = 1352.5
	require.NoError(t, savings.Deposit(dec("500")))
	savings.ApplyInterest()
	assert.True(t, savings.Balance().Equal(dec("1552.5")))
	require.NoError(t, savings.Withdraw(dec("200")))
	assert.True(t, savings.Balance().Equal(dec("1352.5")))

	// 活期：200 - 600 = -400（動用透支）；+300 = -100
	require.NoError(t, current.Withdraw(dec("600")))
	assert.True(t, current.Balance().Equal(dec("-400")))
	require.NoError(t, current.Deposit(dec("300")))
	assert.True(t, current.Balance().Equal(dec("-100")))

	// 定期：鎖定期內提款失敗，餘額不變
	require.ErrorIs(t, fixed.Withdraw(dec("1000")), ErrLockPeriodActive)
	assert.True(t, fixed.Balance().Equal(dec("5000")))

	// 轉帳 300：S1001 1352.5 → 1052.5；C1001 -100 → 200
	require.NoError(t, b.TransferFunds("S1001", "C1001", dec("300")))
	assert.True(t, savings.Balance().Equal(dec("1052.5")))
	assert.True(t, current.Balance().Equal(dec("200")))
}
