package inventory

import (
	"fmt"
	"slices"

	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
)

// Calculate derives the stock level of one item type from the full
// document history. Returns flip direction: a customer return puts stock
// back, a return to the supplier takes it out.
func Calculate(itemType string, purchases []*purchase.Purchase, sales []*sale.Sale, lowStockThreshold int64) Level {
	var regularIn, returnIn, regularOut, returnOut int64

	for _, p := range purchases {
		if p.ItemType != itemType {
			continue
		}
		if p.IsReturn {
			returnOut += p.Quantity
		} else {
			regularIn += p.Quantity
		}
	}
	for _, s := range sales {
		if s.ItemType != itemType {
			continue
		}
		if s.IsReturn {
			returnIn += s.Quantity
		} else {
			regularOut += s.Quantity
		}
	}

	inbound := regularIn + returnIn
	outbound := regularOut + returnOut

	onHand := inbound - outbound
	if onHand < 0 {
		onHand = 0
	}

	// Overselling would push the ratio past 1; clamp it like on-hand.
	var turnover float64
	if inbound > 0 {
		turnover = float64(regularOut) / float64(inbound)
		if turnover > 1 {
			turnover = 1
		}
	}

	return Level{
		ItemType: itemType,
		Inbound:  inbound,
		Outbound: outbound,
		OnHand:   onHand,
		Turnover: turnover,
		LowStock: onHand <= lowStockThreshold,
	}
}

// CalculateAll derives levels for every item type in order.
func CalculateAll(itemTypes []string, purchases []*purchase.Purchase, sales []*sale.Sale, lowStockThreshold int64) []Level {
	levels := make([]Level, 0, len(itemTypes))
	for _, t := range itemTypes {
		levels = append(levels, Calculate(t, purchases, sales, lowStockThreshold))
	}
	return levels
}

// Movements builds the stock movement log of one item type, newest first.
func Movements(itemType string, purchases []*purchase.Purchase, sales []*sale.Sale) []Movement {
	log := make([]Movement, 0, len(purchases)+len(sales))

	for _, p := range purchases {
		if p.ItemType != itemType {
			continue
		}
		m := Movement{
			DocID:       p.ID,
			Date:        p.Date,
			Quantity:    p.Quantity,
			Direction:   DirectionIn,
			Description: fmt.Sprintf("supply from %s", p.SupplierName),
		}
		if p.IsReturn {
			m.Direction = DirectionOut
			m.Description = "return to supplier"
		}
		log = append(log, m)
	}
	for _, s := range sales {
		if s.ItemType != itemType {
			continue
		}
		m := Movement{
			DocID:       s.ID,
			Date:        s.Date,
			Quantity:    s.Quantity,
			Direction:   DirectionOut,
			Description: fmt.Sprintf("sale to %s", s.CustomerName),
		}
		if s.IsReturn {
			m.Direction = DirectionIn
			m.Description = "customer return"
		}
		log = append(log, m)
	}

	slices.SortStableFunc(log, func(a, b Movement) int {
		return b.Date.Compare(a.Date)
	})
	return log
}
