package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind names the teller operation a receipt was issued for.
type OperationKind string

const (
	// OperationWithdraw is a cash withdrawal.
	OperationWithdraw OperationKind = "withdraw"
	// OperationDeposit is a cash deposit.
	OperationDeposit OperationKind = "deposit"
)

// Receipt is the result of a completed teller operation. Receipts are not
// persisted; they exist only to be rendered back to the user.
type Receipt struct {
	// ID is a unique identifier for the operation, printed on the receipt.
	ID string `json:"id"`

	// Username is the account the operation was applied to.
	Username string `json:"username"`

	// Operation is the kind of teller operation performed.
	Operation OperationKind `json:"operation"`

	// Amount is the operation amount, always positive.
	Amount decimal.Decimal `json:"amount"`

	// NewBalance is the account balance after the operation.
	NewBalance decimal.Decimal `json:"new_balance"`

	// CreatedAt is the time the operation completed.
	CreatedAt time.Time `json:"created_at"`
}
