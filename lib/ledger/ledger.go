// Package ledger builds a general ledger from a chart of accounts, a
// journal and a currency/price history. The result is a chronologically
// ordered sequence of balanced double-entry lines, valued both in the
// transaction commodity and in the base currency.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/balance"
	"github.com/sledger/sledger/lib/common/compare"
	"github.com/sledger/sledger/lib/common/date"
	"github.com/sledger/sledger/lib/currency"
	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/entry"
	"github.com/sledger/sledger/lib/model/gl"
	"github.com/sledger/sledger/lib/model/price"
	"github.com/sledger/sledger/lib/model/registry"
)

// Input holds the four record sets of one build.
type Input struct {
	Accounts   []*account.Record
	Journal    []*entry.Entry
	Currencies []*currency.Currency
	Prices     []*price.Price

	// Today anchors the end of the processed date range; the zero value
	// means the current date.
	Today time.Time
}

// Build constructs the general ledger. Undated journal entries are ignored;
// without any dated entries the result is empty. Processing walks calendar
// days from the first entry date up to the first of the month after the
// later of the last entry date and today, posting each day's entries and
// then revaluing positions at month ends. Any failure aborts the build.
func Build(input Input) ([]*gl.Line, error) {
	reg, err := registry.FromRecords(input.Accounts)
	if err != nil {
		return nil, err
	}
	converter, err := currency.NewConverter(reg.Commodities(), input.Currencies, input.Prices)
	if err != nil {
		return nil, err
	}

	var journal []*entry.Entry
	for _, e := range input.Journal {
		if e.IsDated() {
			journal = append(journal, e)
		}
	}
	if len(journal) == 0 {
		return nil, nil
	}
	compare.SortStable(journal, entry.Compare)

	today := input.Today
	if today.IsZero() {
		today = date.Today()
	}
	last := journal[len(journal)-1].Date
	if last.Before(today) {
		last = today
	}
	// Step to the first of the month before adding a month: AddDate
	// normalizes day overflow, so Jan 31 plus one month would land on
	// Mar 2 and stretch the range by a whole month.
	last = date.StartOfMonth(last).AddDate(0, 1, 0)

	b := &builder{
		reg:       reg,
		converter: converter,
		journal:   journal,
		balances:  balance.New(),
	}
	for dt := journal[0].Date; !dt.After(last); dt = dt.AddDate(0, 0, 1) {
		if err := b.processDay(dt); err != nil {
			return nil, err
		}
		if err := b.revalue(dt, nil); err != nil {
			return nil, err
		}
	}
	return b.result, nil
}

// builder holds the working state of one build.
type builder struct {
	reg       *registry.Registry
	converter *currency.Converter
	journal   []*entry.Entry
	next      int
	balances  balance.Balances
	result    []*gl.Line
}

// processDay posts all journal entries for the given day.
func (b *builder) processDay(dt time.Time) error {
	toBalanceSection := false
	for b.next < len(b.journal) {
		e := b.journal[b.next]
		if e.Date.After(dt) {
			return nil
		}
		b.next++
		if err := b.processEntry(dt, e, &toBalanceSection); err != nil {
			return Error{Entry: e, Err: err}
		}
	}
	return nil
}

func (b *builder) processEntry(dt time.Time, e *entry.Entry, toBalanceSection *bool) error {
	var amount decimal.Decimal
	switch {
	case e.ToBalance != nil:
		if e.Amount != nil {
			return fmt.Errorf("amount and target balance are both specified, leave only one value")
		}
		acc, err := b.reg.GetAccount(e.AccountID)
		if err != nil {
			return err
		}
		com, err := b.reg.GetCommodity(e.Commodity)
		if err != nil {
			return err
		}
		amount = e.ToBalance.Sub(b.balances.Get(balance.Key{Account: acc, Commodity: com}).Amount)
		*toBalanceSection = true
	case e.Amount != nil:
		if *toBalanceSection {
			return fmt.Errorf("amount entries must precede target balance entries on the same day")
		}
		amount = *e.Amount
	default:
		return nil
	}
	if amount.IsZero() {
		return nil
	}

	acc, err := b.reg.GetAccount(e.AccountID)
	if err != nil {
		return err
	}
	offset, err := b.reg.GetAccount(e.OffsetAccountID)
	if err != nil {
		return fmt.Errorf("offset %w", err)
	}
	com, err := b.reg.GetCommodity(e.Commodity)
	if err != nil {
		return err
	}

	if tag := acc.Tag(); tag != "" && tag != e.Tag {
		return fmt.Errorf("account %q tag %q does not match journal tag %q", acc.ID(), tag, e.Tag)
	}
	if tag := offset.Tag(); tag != "" && tag != e.Tag {
		return fmt.Errorf("offset account %q tag %q does not match journal tag %q", offset.ID(), tag, e.Tag)
	}

	value, err := b.converter.Convert(amount, com, dt)
	if err != nil {
		return err
	}
	return b.post(posting{
		Date:      dt,
		R:         e.R,
		Num:       e.Num,
		Text:      e.Text,
		Amount:    amount,
		Commodity: com,
		Value:     value,
		Account:   acc,
		Offset:    offset,
		Tag:       e.Tag,
		DocText:   e.DocText,
	})
}
