package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/balance"
	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/commodity"
	"github.com/sledger/sledger/lib/model/gl"
)

// posting is one balanced transaction to record. Amount may be zero for
// base-currency-only corrections; Value always carries the full
// base-currency value.
type posting struct {
	Date      time.Time
	R         string
	Num       string
	Text      string
	Amount    decimal.Decimal
	Commodity *commodity.Commodity
	Value     decimal.Decimal
	Account   *account.Account
	Offset    *account.Account
	Tag       string
	DocText   string
}

// post splits the posting into legs accepted by all involved accounts and
// records them.
func (b *builder) post(p posting) error {
	legs, err := b.resolve(p)
	if err != nil {
		return err
	}
	for _, leg := range legs {
		b.book(leg)
	}
	return nil
}

// resolve rewrites the posting through settlement accounts until each side
// only receives commodities it accepts. Each side is rewritten at most
// once, so at most three balanced legs result. A zero amount bypasses the
// acceptance check.
func (b *builder) resolve(p posting) ([]posting, error) {
	if p.Amount.IsZero() {
		return []posting{p}, nil
	}
	legs := []posting{p}
	if !p.Account.Accepts(p.Commodity) {
		settlement, amount, native, err := b.settlement(p.Account, p.Commodity, p.Amount, p.Date)
		if err != nil {
			return nil, err
		}
		first := p
		first.Offset, first.Amount, first.Commodity = settlement, amount, native
		second := p
		second.Account = settlement
		legs = []posting{first, second}
	}
	// The last leg still moves the original commodity; its offset side may
	// need its own rewrite.
	last := &legs[len(legs)-1]
	if !last.Offset.Accepts(last.Commodity) {
		settlement, amount, native, err := b.settlement(last.Offset, last.Commodity, last.Amount, p.Date)
		if err != nil {
			return nil, err
		}
		final := *last
		last.Offset = settlement
		final.Account, final.Amount, final.Commodity = settlement, amount, native
		legs = append(legs, final)
	}
	return legs, nil
}

// settlement validates the settlement configuration of an account that does
// not accept the given commodity, and converts the amount into the
// account's sole native commodity.
func (b *builder) settlement(acc *account.Account, com *commodity.Commodity, amount decimal.Decimal, dt time.Time) (*account.Account, decimal.Decimal, *commodity.Commodity, error) {
	native, err := acc.SingleCommodity()
	if err != nil {
		return nil, decimal.Zero, nil, err
	}
	if acc.SettlementID() == "" {
		return nil, decimal.Zero, nil, fmt.Errorf("account %q does not accept %s and has no settlement account configured", acc.ID(), com)
	}
	settlement, err := b.reg.GetAccount(acc.SettlementID())
	if err != nil {
		return nil, decimal.Zero, nil, fmt.Errorf("settlement %w", err)
	}
	if !settlement.Accepts(com) {
		return nil, decimal.Zero, nil, fmt.Errorf("settlement account %q does not accept %s", settlement.ID(), com)
	}
	if !settlement.Accepts(native) {
		return nil, decimal.Zero, nil, fmt.Errorf("settlement account %q does not accept %s", settlement.ID(), native)
	}
	converted, err := b.converter.ConvertTo(amount, com, dt, native)
	if err != nil {
		return nil, decimal.Zero, nil, err
	}
	return settlement, converted, native, nil
}

// book applies the posting to the running balances and appends its two
// mirror lines to the result.
func (b *builder) book(p posting) {
	b.balances.Add(balance.Key{Account: p.Account, Commodity: p.Commodity}, p.Amount, p.Value)
	b.balances.Add(balance.Key{Account: p.Offset, Commodity: p.Commodity}, p.Amount.Neg(), p.Value.Neg())
	b.result = append(b.result, gl.Builder{
		Date:      p.Date,
		R:         p.R,
		Num:       p.Num,
		Text:      p.Text,
		Amount:    p.Amount,
		Commodity: p.Commodity,
		Value:     p.Value,
		Account:   p.Account,
		Offset:    p.Offset,
		Tag:       p.Tag,
		DocText:   p.DocText,
	}.Build()...)
}
