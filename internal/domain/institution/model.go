package institution

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and query format of trade dates
const DateLayout = "2006-01-02"

// Entry is one institution in a top seller / top buyer list
// Stored as an element of a jsonb array
type Entry struct {
	Name  string           `json:"name"`
	Value *decimal.Decimal `json:"value,omitempty"`
}

// Trade represents the institutional flow of one symbol on one day
// Maps to api_institutions table
type Trade struct {
	ID         int64   `json:"id" db:"id"`
	Symbol     string  `json:"symbol" db:"symbol"`
	Date       Date    `json:"date" db:"date"`
	TopSellers []Entry `json:"top_sellers" db:"top_sellers"`
	TopBuyers  []Entry `json:"top_buyers" db:"top_buyers"`
}

// Date is a calendar day serialized as YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+DateLayout+`"`, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}

// HasEntry reports whether any entry in the list is named name
func HasEntry(entries []Entry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
