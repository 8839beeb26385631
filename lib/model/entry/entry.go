package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sledger/sledger/lib/common/compare"
)

// Entry is one journal record. A zero Date marks an undated entry, which is
// ignored by the ledger. Amount and ToBalance are mutually exclusive: an
// entry either moves a signed amount or sets the account's balance in the
// given commodity to a target value.
type Entry struct {
	Date            time.Time
	R               string // reconciliation marker
	Num             string // reference number
	Text            string
	AccountID       string
	OffsetAccountID string
	Amount          *decimal.Decimal
	ToBalance       *decimal.Decimal
	Commodity       string
	Tag             string
	DocText         string
}

// IsDated reports whether the entry carries a date.
func (e *Entry) IsDated() bool {
	return !e.Date.IsZero()
}

func (e *Entry) String() string {
	var b strings.Builder
	if e.IsDated() {
		fmt.Fprintf(&b, "%s ", e.Date.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "%s / %s", e.AccountID, e.OffsetAccountID)
	switch {
	case e.ToBalance != nil:
		fmt.Fprintf(&b, " to balance %s %s", e.ToBalance, e.Commodity)
	case e.Amount != nil:
		fmt.Fprintf(&b, " %s %s", e.Amount, e.Commodity)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	}
	return b.String()
}

// Compare orders entries by date; within a date, amount entries precede
// target-balance entries. Target-balance entries are computed relative to
// the balance after all same-day amount postings, so this tie-break is
// load-bearing. Use with a stable sort to preserve input order otherwise.
var Compare = compare.Combine[*Entry](
	func(e1, e2 *Entry) compare.Order { return compare.Time(e1.Date, e2.Date) },
	func(e1, e2 *Entry) compare.Order { return compare.Bool(e1.ToBalance != nil, e2.ToBalance != nil) },
)
