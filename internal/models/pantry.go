package models

// StockLevel classifies how much of a pantry item is left relative to its
// full-stock reference quantity.
type StockLevel string

const (
	StockOK    StockLevel = "ok"
	StockLow   StockLevel = "low"
	StockEmpty StockLevel = "empty"
)

// LowStockThreshold is the current/max ratio at or below which an item is
// considered low. 0.25 is the canonical value.
const LowStockThreshold = 0.25

// PantryItem is a tracked kitchen staple. CurrentQty is kept in [0, ∞) by
// the consuming operations; it is never stored negative. MaxQty is the
// "full stock" reference used both for refills and for classification.
type PantryItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	CurrentQty float64 `json:"currentQty"`
	MaxQty     float64 `json:"maxQty"`
	Unit       string  `json:"unit"`
}

// StockLevel returns the derived classification of the item. It is not
// stored; it is recomputed from the quantities on every call.
func (p *PantryItem) StockLevel() StockLevel {
	return ClassifyStock(p.CurrentQty, p.MaxQty)
}

// ClassifyStock maps a (current, max) quantity pair to a stock level.
// Non-positive current is always empty. A non-positive max never divides:
// anything left counts as ok.
func ClassifyStock(current, max float64) StockLevel {
	if current <= 0 {
		return StockEmpty
	}
	if max <= 0 {
		return StockOK
	}
	if current/max <= LowStockThreshold {
		return StockLow
	}
	return StockOK
}
