package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/commodity"
	"github.com/sledger/sledger/lib/model/entry"
)

// Error is a ledger processing error, carrying the offending journal entry
// or the revaluation context it occurred in.
type Error struct {
	Entry     *entry.Entry
	Account   *account.Account
	Commodity *commodity.Commodity
	Date      time.Time
	Err       error
}

func (e Error) Error() string {
	var b strings.Builder
	switch {
	case e.Entry != nil:
		fmt.Fprintf(&b, "processing journal entry %s", e.Entry)
	case e.Account != nil:
		fmt.Fprintf(&b, "revaluing %s %s on %s", e.Account.ID(), e.Commodity, e.Date.Format("2006-01-02"))
	}
	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e Error) Unwrap() error {
	return e.Err
}
