package price

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is one historical exchange-rate record: one unit of Commodity costs
// Price units of Target on the given date. An empty Target quotes against
// the base currency.
type Price struct {
	Date      time.Time
	Commodity string
	Target    string
	Price     decimal.Decimal
}
