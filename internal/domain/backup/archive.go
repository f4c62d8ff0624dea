// Package backup exports the full data set as a signed, compressed
// archive and restores it back. The archive is zstd-compressed JSON with
// a signature field that guards against restoring a foreign file.
package backup

import (
	"time"

	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

const (
	// Signature identifies archives produced by this system.
	Signature = "WAKALA_LEDGER_BACKUP"

	// Version is the current archive schema version.
	Version = "1"
)

// Archive is the envelope written to disk.
type Archive struct {
	Signature  string    `json:"signature"`
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	Data       Payload   `json:"data"`
}

// Payload carries every collection the system owns.
type Payload struct {
	Counterparties []*counterparty.Counterparty `json:"counterparties"`
	Sales          []*sale.Sale                 `json:"sales"`
	Purchases      []*purchase.Purchase         `json:"purchases"`
	Vouchers       []*voucher.Voucher           `json:"vouchers"`
	Expenses       []*expense.Expense           `json:"expenses"`
	ItemTypes      []string                     `json:"itemTypes"`
	RateHistory    currency.History             `json:"rateHistory"`
}

// NewArchive wraps a payload in a signed envelope dated now.
func NewArchive(data Payload) Archive {
	return Archive{
		Signature:  Signature,
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Data:       data,
	}
}
