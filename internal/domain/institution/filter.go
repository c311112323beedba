package institution

import (
	"fmt"
	"strings"
	"time"
)

// Params are the raw query parameters of GET /get-institution-trade
// nil means the parameter was not sent
type Params struct {
	Name   *string
	Symbol *string
	Date   *string
}

// KeyParts returns the parameters in cache key order: name, symbol, date
func (p Params) KeyParts() []*string {
	return []*string{p.Name, p.Symbol, p.Date}
}

// Filter is the resolved query. Zero fields are not applied.
type Filter struct {
	Name   string     // exact institution name in top_sellers OR top_buyers
	Symbol string     // case-insensitive substring of symbol
	Date   *time.Time // exact trading day
}

// ResolveFilter validates raw parameters and builds a Filter
func ResolveFilter(p Params) (Filter, error) {
	var f Filter

	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Symbol != nil {
		f.Symbol = *p.Symbol
	}
	if p.Date != nil && *p.Date != "" {
		d, err := time.Parse(DateLayout, strings.TrimSpace(*p.Date))
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %q", ErrInvalidDate, *p.Date)
		}
		f.Date = &d
	}

	return f, nil
}

// Matches evaluates the filter against a single record
func (f Filter) Matches(t Trade) bool {
	if f.Name != "" && !HasEntry(t.TopSellers, f.Name) && !HasEntry(t.TopBuyers, f.Name) {
		return false
	}
	if f.Symbol != "" && !strings.Contains(strings.ToLower(t.Symbol), strings.ToLower(f.Symbol)) {
		return false
	}
	if f.Date != nil && !t.Date.Equal(NewDate(*f.Date).Time) {
		return false
	}
	return true
}
