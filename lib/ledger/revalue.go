package ledger

import (
	"fmt"
	"time"

	"github.com/sledger/sledger/lib/balance"
	"github.com/sledger/sledger/lib/common/date"
	"github.com/sledger/sledger/lib/model/account"
)

// revalue recomputes the base-currency value of held positions and posts a
// correcting entry against the configured revaluation account where it
// changed. Unfiltered, it only runs when the next calendar day starts a new
// month; filtered to a single account it runs unconditionally for that
// account's positions.
func (b *builder) revalue(dt time.Time, only *account.Account) error {
	if only == nil && !date.IsMonthEnd(dt) {
		return nil
	}
	// Corrections posted below create new positions for the revaluation
	// accounts; iterate over a snapshot of the keys.
	for _, key := range b.balances.SortedKeys() {
		if only != nil && key.Account != only {
			continue
		}
		if err := b.revalueKey(dt, key); err != nil {
			return Error{Account: key.Account, Commodity: key.Commodity, Date: dt, Err: err}
		}
	}
	return nil
}

func (b *builder) revalueKey(dt time.Time, key balance.Key) error {
	acc := key.Account
	if acc.IsEquity() {
		return nil
	}
	pos := b.balances.Get(key)
	value, err := b.converter.Convert(pos.Amount, key.Commodity, dt)
	if err != nil {
		return err
	}
	correction := value.Sub(pos.Value)
	if correction.IsZero() {
		return nil
	}

	if acc.RevaluationID() == "" {
		return fmt.Errorf("no revaluation account configured for account %q", acc.ID())
	}
	revaluation, err := b.reg.GetAccount(acc.RevaluationID())
	if err != nil {
		return fmt.Errorf("revaluation %w", err)
	}
	if !revaluation.IsEquity() {
		return fmt.Errorf("revaluation account %q is not of type 'E' (Equity)", revaluation.ID())
	}
	if acc.Tag() != "" && revaluation.Tag() != "" && acc.Tag() != revaluation.Tag() {
		return fmt.Errorf("account %q tag %q does not match revaluation account %q tag %q",
			acc.ID(), acc.Tag(), revaluation.ID(), revaluation.Tag())
	}
	tag := acc.Tag()
	if tag == "" {
		tag = revaluation.Tag()
	}

	b.book(posting{
		Date:      dt,
		R:         "r",
		Text:      fmt.Sprintf("%s %s: %s => %s", pos.Amount, key.Commodity, pos.Value, value),
		Commodity: key.Commodity,
		Value:     correction,
		Account:   acc,
		Offset:    revaluation,
		Tag:       tag,
	})
	return nil
}
