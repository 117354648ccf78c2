package gen

import (
	"fmt"

	"shipment-generator/internal/shipment"
)

var defaultItems = []string{"A", "B", "C", "D", "E"}

// OrderSpec shapes the orders attached to a shipment.
type OrderSpec struct {
	Count    [2]int // inclusive
	Quantity [2]int // inclusive
	Items    []string
	// Prefix returns the order id prefix for a company, e.g. "ORD-TBL".
	Prefix func(company string) string
}

// CompanyPrefix uses the first three letters of the company code.
func CompanyPrefix(company string) string {
	code := company
	if len(code) > 3 {
		code = code[:3]
	}
	return "ORD-" + code
}

// FixedPrefix ignores the company.
func FixedPrefix(prefix string) func(string) string {
	return func(string) string { return prefix }
}

// Orders builds the synthetic order list for one shipment.
func Orders(src *Source, company string, spec OrderSpec) []shipment.Order {
	items := spec.Items
	if len(items) == 0 {
		items = defaultItems
	}
	prefix := CompanyPrefix
	if spec.Prefix != nil {
		prefix = spec.Prefix
	}
	n := src.IntRange(spec.Count[0], spec.Count[1])
	out := make([]shipment.Order, n)
	for i := range out {
		out[i] = shipment.Order{
			OrderID:  fmt.Sprintf("%s%d", prefix(company), src.IntRange(1000, 9999)),
			Item:     "สินค้า " + Pick(src, items),
			Quantity: src.IntRange(spec.Quantity[0], spec.Quantity[1]),
		}
	}
	return out
}
