// Package inventory derives stock levels and movement logs for each item
// type from the purchase and sale documents. There is no stock table:
// levels are recomputed from the document history every time.
package inventory

import (
	"time"

	"wakala/internal/core/id"
)

// Level is the derived stock position of one item type.
type Level struct {
	ItemType string `json:"itemType"`

	// Inbound counts non-return purchases plus customer returns.
	Inbound int64 `json:"inbound"`

	// Outbound counts non-return sales plus returns to suppliers.
	Outbound int64 `json:"outbound"`

	// OnHand is inbound minus outbound, clamped at zero. A document
	// history that oversells reads as empty, never negative.
	OnHand int64 `json:"onHand"`

	// Turnover is the share of inbound stock actually sold (returns to
	// suppliers excluded). Zero when nothing came in.
	Turnover float64 `json:"turnover"`

	// LowStock is set when OnHand sits at or below the threshold.
	LowStock bool `json:"lowStock"`
}

// Direction of a movement from the stock's point of view.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Movement is one stock-affecting document, newest first in the log.
type Movement struct {
	DocID       id.ID     `json:"docId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Direction   Direction `json:"direction"`
}
