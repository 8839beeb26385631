package price

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/common/dict"
	"github.com/sledger/sledger/lib/model/commodity"
)

// Prices stores the price for a commodity to a target commodity
// Outer map: target commodity
// Inner map: commodity
// value: price in (target commodity / commodity)
type Prices map[*commodity.Commodity]NormalizedPrices

var one = decimal.NewFromInt(1)

// Insert inserts a new price, together with its inverse.
func (ps Prices) Insert(commodity *commodity.Commodity, price decimal.Decimal, target *commodity.Commodity) {
	ps.addPrice(target, commodity, price)
	ps.addPrice(commodity, target, one.Div(price).Truncate(8))
}

func (ps Prices) addPrice(target, commodity *commodity.Commodity, price decimal.Decimal) {
	dict.GetDefault(ps, target, NewNormalizedPrices)[commodity] = price
}

// Normalize creates a normalized price map for the given commodity.
func (ps Prices) Normalize(t *commodity.Commodity) NormalizedPrices {
	res := NormalizedPrices{t: one}
	ps.normalize(t, res)
	return res
}

// normalize recursively computes prices by traversing the price graph.
// res must already contain a price for c.
func (ps Prices) normalize(c *commodity.Commodity, res NormalizedPrices) {
	for neighbor, price := range ps[c] {
		if _, done := res[neighbor]; done {
			continue
		}
		res[neighbor] = Multiply(price, res[c])
		ps.normalize(neighbor, res)
	}
}

// NormalizedPrices is a map representing the price of
// commodities in some base commodity.
type NormalizedPrices map[*commodity.Commodity]decimal.Decimal

func NewNormalizedPrices() NormalizedPrices {
	return make(NormalizedPrices)
}

func (np NormalizedPrices) Price(c *commodity.Commodity) (decimal.Decimal, error) {
	price, ok := np[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price found for %v", c)
	}
	return price, nil
}

// Valuate valuates the given amount.
func (np NormalizedPrices) Valuate(c *commodity.Commodity, a decimal.Decimal) (decimal.Decimal, error) {
	price, ok := np[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price found for %v", c)
	}
	return Multiply(a, price), nil
}

func Multiply(n1, n2 decimal.Decimal) decimal.Decimal {
	return n1.Mul(n2).Truncate(8)
}
