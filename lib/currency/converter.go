package currency

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/sledger/sledger/lib/common/compare"
	"github.com/sledger/sledger/lib/model/commodity"
	"github.com/sledger/sledger/lib/model/price"
)

// Currency declares a commodity of the currency history. Exactly one record
// must be flagged as the base currency.
type Currency struct {
	Code string
	Base bool
}

// Converter values amounts in other commodities as of a given date. It is
// immutable once constructed and safe for concurrent use.
type Converter struct {
	base *commodity.Commodity

	// dates holds the distinct price dates in ascending order; history[i]
	// is the normalized price map valid from dates[i] on. Prices carry
	// forward until superseded.
	dates   []time.Time
	history []price.NormalizedPrices
}

// NewConverter builds a converter from the currency and price history.
func NewConverter(commodities *commodity.Registry, currencies []*Currency, prices []*price.Price) (*Converter, error) {
	c := &Converter{}
	var errs error
	for _, cur := range currencies {
		com, err := commodities.Get(cur.Code)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := commodities.TagCurrency(cur.Code); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if cur.Base {
			if c.base != nil && c.base != com {
				errs = multierr.Append(errs, fmt.Errorf("multiple base currencies: %s and %s", c.base, com))
				continue
			}
			c.base = com
		}
	}
	if errs != nil {
		return nil, errs
	}
	if c.base == nil {
		return nil, fmt.Errorf("no base currency configured")
	}

	sorted := make([]*price.Price, 0, len(prices))
	for _, p := range prices {
		if p.Date.IsZero() {
			continue
		}
		sorted = append(sorted, p)
	}
	compare.SortStable(sorted, func(p1, p2 *price.Price) compare.Order {
		return compare.Time(p1.Date, p2.Date)
	})

	graph := make(price.Prices)
	for i, p := range sorted {
		com, err := commodities.Get(p.Commodity)
		if err != nil {
			return nil, err
		}
		target := c.base
		if p.Target != "" {
			if target, err = commodities.Get(p.Target); err != nil {
				return nil, err
			}
		}
		graph.Insert(com, p.Price, target)
		if i+1 < len(sorted) && sorted[i+1].Date.Equal(p.Date) {
			continue
		}
		c.dates = append(c.dates, p.Date)
		c.history = append(c.history, graph.Normalize(c.base))
	}
	return c, nil
}

// Base returns the base currency.
func (c *Converter) Base() *commodity.Commodity {
	return c.base
}

// Convert values the amount in the base currency as of the given date.
func (c *Converter) Convert(amount decimal.Decimal, from *commodity.Commodity, date time.Time) (decimal.Decimal, error) {
	return c.ConvertTo(amount, from, date, c.base)
}

// ConvertTo values the amount in the target commodity as of the given date,
// using the latest prices known on or before that date.
func (c *Converter) ConvertTo(amount decimal.Decimal, from *commodity.Commodity, date time.Time, to *commodity.Commodity) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	np, err := c.at(date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("converting %s %s: %w", amount, from, err)
	}
	value, err := np.Valuate(from, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("converting %s %s on %s: %w", amount, from, date.Format("2006-01-02"), err)
	}
	if to == c.base {
		return value, nil
	}
	p, err := np.Price(to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("converting %s %s to %s on %s: %w", amount, from, to, date.Format("2006-01-02"), err)
	}
	return value.Div(p).Truncate(8), nil
}

func (c *Converter) at(date time.Time) (price.NormalizedPrices, error) {
	// first index with dates[i] > date
	i := sort.Search(len(c.dates), func(i int) bool {
		return c.dates[i].After(date)
	})
	if i == 0 {
		return nil, fmt.Errorf("no prices known on or before %s", date.Format("2006-01-02"))
	}
	return c.history[i-1], nil
}
