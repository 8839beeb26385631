package gl

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/commodity"
)

// Line is one general ledger posting. Every transaction produces exactly
// two lines whose Amount and Value are additive inverses. A zero Amount
// with a nonzero Value marks a base-currency-only correction, as posted by
// the month-end revaluation.
type Line struct {
	Date      time.Time
	R         string // reconciliation marker; "r" on revaluation lines
	Num       string
	Text      string
	Amount    decimal.Decimal
	Commodity *commodity.Commodity
	Value     decimal.Decimal // amount in the base currency
	Account   *account.Account
	Offset    *account.Account
	Tag       string
	DocText   string
}

// Builder builds the two mirror lines of one balanced transaction.
type Builder struct {
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

// Build returns the account line and its mirrored offset line.
func (b Builder) Build() []*Line {
	return []*Line{
		{
			Date:      b.Date,
			R:         b.R,
			Num:       b.Num,
			Text:      b.Text,
			Amount:    b.Amount,
			Commodity: b.Commodity,
			Value:     b.Value,
			Account:   b.Account,
			Offset:    b.Offset,
			Tag:       b.Tag,
			DocText:   b.DocText,
		},
		{
			Date:      b.Date,
			R:         b.R,
			Num:       b.Num,
			Text:      b.Text,
			Amount:    b.Amount.Neg(),
			Commodity: b.Commodity,
			Value:     b.Value.Neg(),
			Account:   b.Offset,
			Offset:    b.Account,
			Tag:       b.Tag,
			DocText:   b.DocText,
		},
	}
}
