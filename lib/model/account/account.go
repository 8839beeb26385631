package account

import (
	"fmt"
	"strings"

	"github.com/sledger/sledger/lib/common/compare"
	"github.com/sledger/sledger/lib/common/set"
	"github.com/sledger/sledger/lib/model/commodity"
)

// Type is the type of an account.
type Type int

const (
	// ASSETS represents an asset account.
	ASSETS Type = iota
	// LIABILITIES represents a liability account.
	LIABILITIES
	// EQUITY represents an equity account.
	EQUITY
)

func (t Type) String() string {
	switch t {
	case ASSETS:
		return "Assets"
	case LIABILITIES:
		return "Liabilities"
	case EQUITY:
		return "Equity"
	}
	return ""
}

// Code returns the single-letter type code used in chart-of-accounts records.
func (t Type) Code() string {
	switch t {
	case ASSETS:
		return "A"
	case LIABILITIES:
		return "L"
	case EQUITY:
		return "E"
	}
	return ""
}

var types = map[string]Type{
	"A": ASSETS,
	"L": LIABILITIES,
	"E": EQUITY,
}

// ParseType parses a single-letter account type code.
func ParseType(code string) (Type, error) {
	t, ok := types[code]
	if !ok {
		return 0, fmt.Errorf("unsupported account type %q, want one of 'A' (Assets), 'L' (Liabilities) or 'E' (Equity)", code)
	}
	return t, nil
}

// Record is a raw chart-of-accounts row. Records with an empty AccountID
// are ignored.
type Record struct {
	AccountID            string
	Name                 string
	Name1                string
	Name2                string
	Name3                string
	Name4                string
	Type                 string
	Tag                  string
	Commodity            string // comma-separated acceptance list, empty accepts any
	SettlementAccountID  string
	RevaluationAccountID string
}

// Account is an immutable chart-of-accounts entry with interned commodities.
type Account struct {
	id          string
	name        string
	altNames    [4]string
	accountType Type
	tag         string

	// commodities is the acceptance set; nil accepts any commodity.
	commodities set.Set[*commodity.Commodity]
	// accepted preserves the configured order of the acceptance list.
	accepted []*commodity.Commodity

	settlementID  string
	revaluationID string
}

// Create resolves a record into an account, interning its commodities.
func Create(rec *Record, commodities *commodity.Registry) (*Account, error) {
	t, err := ParseType(rec.Type)
	if err != nil {
		return nil, err
	}
	a := &Account{
		id:            rec.AccountID,
		name:          rec.Name,
		altNames:      [4]string{rec.Name1, rec.Name2, rec.Name3, rec.Name4},
		accountType:   t,
		tag:           rec.Tag,
		settlementID:  rec.SettlementAccountID,
		revaluationID: rec.RevaluationAccountID,
	}
	if spec := strings.TrimSpace(rec.Commodity); spec != "" {
		a.commodities = set.New[*commodity.Commodity]()
		for _, code := range strings.Split(spec, ",") {
			com, err := commodities.Get(strings.TrimSpace(code))
			if err != nil {
				return nil, err
			}
			if a.commodities.Has(com) {
				continue
			}
			a.commodities.Add(com)
			a.accepted = append(a.accepted, com)
		}
	}
	return a, nil
}

// ID returns the unique account identifier.
func (a *Account) ID() string {
	return a.id
}

// Name returns the display name of this account.
func (a *Account) Name() string {
	return a.name
}

// AltNames returns the four alternate name fields.
func (a *Account) AltNames() [4]string {
	return a.altNames
}

// Type returns the account type.
func (a *Account) Type() Type {
	return a.accountType
}

// Tag returns the configured tag, or the empty string.
func (a *Account) Tag() string {
	return a.tag
}

// IsEquity reports whether this is an equity account.
func (a *Account) IsEquity() bool {
	return a.accountType == EQUITY
}

// Accepts reports whether the account accepts amounts in the given
// commodity. An account without an acceptance list accepts any commodity.
func (a *Account) Accepts(c *commodity.Commodity) bool {
	if a.commodities == nil {
		return true
	}
	return a.commodities.Has(c)
}

// SingleCommodity returns the account's sole accepted commodity. Settlement
// through an account requires exactly one.
func (a *Account) SingleCommodity() (*commodity.Commodity, error) {
	if len(a.accepted) != 1 {
		return nil, fmt.Errorf("account %q: settlement requires a single accepted commodity", a.id)
	}
	return a.accepted[0], nil
}

// SettlementID returns the identifier of the configured settlement account,
// or the empty string.
func (a *Account) SettlementID() string {
	return a.settlementID
}

// RevaluationID returns the identifier of the configured revaluation
// account, or the empty string.
func (a *Account) RevaluationID() string {
	return a.revaluationID
}

func (a *Account) String() string {
	return a.id
}

func Compare(a1, a2 *Account) compare.Order {
	return compare.Ordered(a1.id, a2.id)
}

// Registry is a collection of accounts indexed by identifier.
type Registry struct {
	index map[string]*Account
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Account),
	}
}

// Add inserts the account, rejecting duplicate identifiers.
func (as *Registry) Add(a *Account) error {
	if _, ok := as.index[a.id]; ok {
		return fmt.Errorf("duplicate account %q", a.id)
	}
	as.index[a.id] = a
	return nil
}

// Get returns the account with the given identifier.
func (as *Registry) Get(id string) (*Account, error) {
	a, ok := as.index[id]
	if !ok {
		return nil, fmt.Errorf("account %q not found", id)
	}
	return a, nil
}
