package models

const (
	StockStatusLow = "Low Stock"
	StockStatusIn  = "In Stock"
)

// StockStatus classifies a quantity against its reorder point.
func StockStatus(quantity, reorderPoint int) string {
	if quantity <= reorderPoint {
		return StockStatusLow
	}
	return StockStatusIn
}
