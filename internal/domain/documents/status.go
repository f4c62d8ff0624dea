// Package documents holds types shared by the transaction document kinds:
// sales, purchases, cash vouchers and expenses.
package documents

// Status is the settlement mode of a sale or purchase.
//
// Cash documents settle immediately and never enter the debt vector;
// credit documents do. Both appear in the entity statement.
type Status string

const (
	StatusCash   Status = "cash"
	StatusCredit Status = "credit"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusCash || s == StatusCredit
}
