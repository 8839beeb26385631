package balance

import (
	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/common/compare"
	"github.com/sledger/sledger/lib/common/dict"
	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/commodity"
)

// Key identifies a position held by an account in one commodity.
type Key struct {
	Account   *account.Account
	Commodity *commodity.Commodity
}

func Compare(k1, k2 Key) compare.Order {
	if o := account.Compare(k1.Account, k2.Account); o != compare.Equal {
		return o
	}
	return commodity.Compare(k1.Commodity, k2.Commodity)
}

// Position is an accumulated amount together with its accumulated
// base-currency value.
type Position struct {
	Amount decimal.Decimal
	Value  decimal.Decimal
}

// Balances tracks the running balance per (account, commodity) position.
// Entries are created on first touch and never deleted. Purely additive,
// no validation.
type Balances map[Key]Position

func New() Balances {
	return make(Balances)
}

// Add adds the deltas to the position and returns the updated value.
func (bs Balances) Add(k Key, amount, value decimal.Decimal) Position {
	pos := bs[k]
	pos.Amount = pos.Amount.Add(amount)
	pos.Value = pos.Value.Add(value)
	bs[k] = pos
	return pos
}

// Get returns the current position without mutating it.
func (bs Balances) Get(k Key) Position {
	return bs[k]
}

// SortedKeys returns the keys ordered by account and commodity. Map
// construction order is never relied upon.
func (bs Balances) SortedKeys() []Key {
	return dict.SortedKeys(bs, Compare)
}
