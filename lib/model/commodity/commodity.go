package commodity

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/sledger/sledger/lib/common/compare"
)

// Commodity is a currency or unit-of-value code attached to an amount.
type Commodity struct {
	name string

	// IsCurrency is set when the commodity appears in the currency history.
	IsCurrency bool
}

// Name returns the commodity code.
func (c Commodity) Name() string {
	return c.name
}

func (c Commodity) String() string {
	return c.name
}

func Compare(c1, c2 *Commodity) compare.Order {
	return compare.Ordered(c1.Name(), c2.Name())
}

// Registry is a thread-safe collection of interned commodities.
type Registry struct {
	index map[string]*Commodity
	mutex sync.RWMutex
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Commodity),
	}
}

// Get returns the commodity with the given name, creating it if necessary.
func (cs *Registry) Get(name string) (*Commodity, error) {
	cs.mutex.RLock()
	res, ok := cs.index[name]
	cs.mutex.RUnlock()
	if ok {
		return res, nil
	}
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	// check if the commodity has been created in the meantime
	if res, ok = cs.index[name]; ok {
		return res, nil
	}
	if !isValidCommodity(name) {
		return nil, fmt.Errorf("invalid commodity name %q", name)
	}
	res = &Commodity{name: name}
	cs.index[name] = res
	return res, nil
}

// TagCurrency tags the commodity as a currency.
func (cs *Registry) TagCurrency(name string) error {
	commodity, err := cs.Get(name)
	if err != nil {
		return err
	}
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	commodity.IsCurrency = true
	return nil
}

func isValidCommodity(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !(unicode.IsLetter(c) || unicode.IsDigit(c)) {
			return false
		}
	}
	return true
}
