package domain

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"
)

// Wallet holds a user's funds. Balance is in minor units (kobo) and is only
// mutated inside a database transaction that also records the movement.
type Wallet struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	WalletNumber string    `json:"wallet_number"`
	Balance      int64     `json:"balance"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewWallet creates a zero-balance wallet for a user.
func NewWallet(userID uuid.UUID, currency string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:           uuid.New(),
		UserID:       userID,
		WalletNumber: GenerateWalletNumber(),
		Balance:      0,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Credit adds amount to the balance.
func (w *Wallet) Credit(amount int64) {
	w.Balance += amount
}

// Debit subtracts amount from the balance. The balance never goes negative.
func (w *Wallet) Debit(amount int64) error {
	if w.Balance < amount {
		return apperror.ErrInsufficientFunds(w.Balance, amount)
	}
	w.Balance -= amount
	return nil
}

// GenerateWalletNumber returns a random 10-digit wallet number.
func GenerateWalletNumber() string {
	const digits = "0123456789"
	b := make([]byte, 10)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		b[i] = digits[n.Int64()]
	}
	return string(b)
}
