package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestBankAccount_CurrentBalance(t *testing.T) {
	userID := uuid.New()
	account := NewBankAccount(userID, "Nubank", decimal.NewFromInt(1000), BankAccountTypeChecking, "#7950F2")
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	newTx := func(accountID uuid.UUID, value int64, txType TransactionType) *Transaction {
		return NewTransaction(userID, accountID, uuid.New(), "tx", decimal.NewFromInt(value), date, txType)
	}

	t.Run("no transactions returns initial balance", func(t *testing.T) {
		got := account.CurrentBalance(nil)
		if !got.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("income adds and outcome subtracts", func(t *testing.T) {
		transactions := []*Transaction{
			newTx(account.ID, 500, TransactionTypeIncome),
			newTx(account.ID, 200, TransactionTypeOutcome),
		}
		got := account.CurrentBalance(transactions)
		if !got.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("expected 1300, got %s", got)
		}
	})

	t.Run("balance is order independent", func(t *testing.T) {
		forward := []*Transaction{
			newTx(account.ID, 500, TransactionTypeIncome),
			newTx(account.ID, 200, TransactionTypeOutcome),
			newTx(account.ID, 75, TransactionTypeIncome),
		}
		reversed := []*Transaction{forward[2], forward[0], forward[1]}

		if a, b := account.CurrentBalance(forward), account.CurrentBalance(reversed); !a.Equal(b) {
			t.Errorf("expected identical balances, got %s and %s", a, b)
		}
	})

	t.Run("other accounts transactions are ignored", func(t *testing.T) {
		transactions := []*Transaction{
			newTx(account.ID, 100, TransactionTypeIncome),
			newTx(uuid.New(), 9999, TransactionTypeOutcome),
		}
		got := account.CurrentBalance(transactions)
		if !got.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("expected 1100, got %s", got)
		}
	})

	t.Run("balance can go negative", func(t *testing.T) {
		transactions := []*Transaction{
			newTx(account.ID, 1500, TransactionTypeOutcome),
		}
		got := account.CurrentBalance(transactions)
		if !got.Equal(decimal.NewFromInt(-500)) {
			t.Errorf("expected -500, got %s", got)
		}
	})

	t.Run("decimal values do not drift", func(t *testing.T) {
		cents := NewBankAccount(userID, "Cents", decimal.RequireFromString("0.10"), BankAccountTypeCash, "#FFF")
		transactions := make([]*Transaction, 0, 10)
		for i := 0; i < 10; i++ {
			transactions = append(transactions, NewTransaction(
				userID, cents.ID, uuid.New(), "tx",
				decimal.RequireFromString("0.10"), date, TransactionTypeIncome,
			))
		}
		got := cents.CurrentBalance(transactions)
		if !got.Equal(decimal.RequireFromString("1.10")) {
			t.Errorf("expected 1.10, got %s", got)
		}
	})
}
