package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

func newTestMoney(t *testing.T, amount int64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoney(amount, valueobject.Currency("USD"))
	if err != nil {
		t.Fatalf("failed to build money: %v", err)
	}
	return m
}

func TestNewTransaction_CashKind_NoAssetRequired(t *testing.T) {
	tx, err := NewTransaction(
		uuid.New(), uuid.New(), nil,
		valueobject.TransactionKindDeposit,
		newTestMoney(t, 10_000), 0, "payroll", time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.AssetID != nil {
		t.Error("cash transaction should not carry an asset")
	}
}

func TestNewTransaction_BuyWithoutAsset_Rejected(t *testing.T) {
	_, err := NewTransaction(
		uuid.New(), uuid.New(), nil,
		valueobject.TransactionKindBuy,
		newTestMoney(t, -5_000), 100, "", time.Now(),
	)
	if err == nil {
		t.Error("buy without asset should be rejected")
	}
}

func TestTransaction_Amend_UpdatesFieldsAndTimestamp(t *testing.T) {
	tx, err := NewTransaction(
		uuid.New(), uuid.New(), nil,
		valueobject.TransactionKindFee,
		newTestMoney(t, -150), 0, "wire fee", time.Now().Add(-time.Hour),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := tx.UpdatedAt
	occurred := time.Now()
	tx.Amend(newTestMoney(t, -200), 0, "corrected wire fee", occurred)

	if tx.Amount.Amount() != -200 {
		t.Errorf("amount should be amended, got %d", tx.Amount.Amount())
	}
	if tx.Description != "corrected wire fee" {
		t.Errorf("description should be amended, got %q", tx.Description)
	}
	if !tx.UpdatedAt.After(before) && tx.UpdatedAt != before {
		t.Error("UpdatedAt should move forward on amend")
	}
}

func TestTransaction_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	tx, err := NewTransaction(
		owner, uuid.New(), nil,
		valueobject.TransactionKindWithdrawal,
		newTestMoney(t, -3_000), 0, "", time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tx.IsOwnedBy(owner) {
		t.Error("owner should match")
	}
	if tx.IsOwnedBy(uuid.New()) {
		t.Error("foreign subject should not match")
	}
}
