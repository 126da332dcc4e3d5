package product

// Product is an incubator model offered for sale.
type Product struct {
	ID       string
	Name     string
	Capacity string
	Stock    int
	Price    int64
}

// LowStockThreshold marks products that should be flagged for restocking.
// It is a display hint only; sales are not blocked below it.
const LowStockThreshold = 20

// LowStock reports whether the product should carry the low-stock marker.
func (p *Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// CapacityTiers are the egg capacities the product catalogue offers.
var CapacityTiers = []int{50, 100, 200, 500, 1000}
