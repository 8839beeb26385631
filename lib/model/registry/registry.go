package registry

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/sledger/sledger/lib/model/account"
	"github.com/sledger/sledger/lib/model/commodity"
)

type Account = account.Account
type Commodity = commodity.Commodity

// Registry holds the referenced accounts and commodities of one build.
type Registry struct {
	accounts    *account.Registry
	commodities *commodity.Registry
}

// New creates a new, empty registry.
func New() *Registry {
	return &Registry{
		accounts:    account.NewRegistry(),
		commodities: commodity.NewRegistry(),
	}
}

// FromRecords creates a registry holding the given chart of accounts.
// Records with an empty identifier are ignored; all invalid records are
// reported together.
func FromRecords(recs []*account.Record) (*Registry, error) {
	reg := New()
	var errs error
	for _, rec := range recs {
		if rec.AccountID == "" {
			continue
		}
		a, err := account.Create(rec, reg.commodities)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("account %q: %w", rec.AccountID, err))
			continue
		}
		if err := reg.accounts.Add(a); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

// GetAccount returns the account with the given identifier.
func (reg *Registry) GetAccount(id string) (*Account, error) {
	return reg.accounts.Get(id)
}

// Account returns an account or panics. For use in tests.
func (reg *Registry) Account(id string) *Account {
	a, err := reg.GetAccount(id)
	if err != nil {
		panic(err)
	}
	return a
}

// GetCommodity returns the commodity with the given name.
func (reg *Registry) GetCommodity(name string) (*Commodity, error) {
	return reg.commodities.Get(name)
}

// Commodity returns a commodity or panics. For use in tests.
func (reg *Registry) Commodity(name string) *Commodity {
	c, err := reg.GetCommodity(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Accounts returns the account registry.
func (reg *Registry) Accounts() *account.Registry {
	return reg.accounts
}

// Commodities returns the commodity registry.
func (reg *Registry) Commodities() *commodity.Registry {
	return reg.commodities
}
