package institution

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleTrades() []Trade {
	day1 := NewDate(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
	day2 := NewDate(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))
	return []Trade{
		{ID: 1, Symbol: "BBCA.JK", Date: day1,
			TopSellers: []Entry{{Name: "Vanguard"}}, TopBuyers: []Entry{{Name: "BlackRock"}}},
		{ID: 2, Symbol: "BBRI.JK", Date: day1,
			TopSellers: []Entry{{Name: "Norges"}}, TopBuyers: []Entry{{Name: "Vanguard"}}},
		{ID: 3, Symbol: "BBCA.JK", Date: day2,
			TopSellers: []Entry{{Name: "Norges"}}, TopBuyers: []Entry{{Name: "BlackRock"}}},
		{ID: 4, Symbol: "TLKM.JK", Date: day2,
			TopSellers: []Entry{{Name: "Vanguard Group"}}, TopBuyers: nil},
	}
}

func apply(f Filter, trades []Trade) []int64 {
	var ids []int64
	for _, t := range trades {
		if f.Matches(t) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func TestResolveFilter(t *testing.T) {
	t.Run("all absent", func(t *testing.T) {
		f, err := ResolveFilter(Params{})
		require.NoError(t, err)
		assert.Equal(t, Filter{}, f)
		assert.Len(t, apply(f, sampleTrades()), 4)
	})

	t.Run("valid date", func(t *testing.T) {
		f, err := ResolveFilter(Params{Date: strPtr("2024-05-03")})
		require.NoError(t, err)
		require.NotNil(t, f.Date)
		assert.Equal(t, []int64{3, 4}, apply(f, sampleTrades()))
	})

	t.Run("empty date is no filter", func(t *testing.T) {
		f, err := ResolveFilter(Params{Date: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, f.Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := ResolveFilter(Params{Date: strPtr("03/05/2024")})
		assert.True(t, errors.Is(err, ErrInvalidDate))
	})
}

func TestFilter_NameMatchesSellersOrBuyers(t *testing.T) {
	f, err := ResolveFilter(Params{Name: strPtr("Vanguard")})
	require.NoError(t, err)

	// Exact entry name, either list; "Vanguard Group" is a different institution
	assert.Equal(t, []int64{1, 2}, apply(f, sampleTrades()))
}

func TestFilter_SymbolCaseInsensitive(t *testing.T) {
	f, err := ResolveFilter(Params{Symbol: strPtr("bbca")})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, apply(f, sampleTrades()))
}

func TestFilter_Conjunctive(t *testing.T) {
	trades := sampleTrades()
	params := []Params{
		{Name: strPtr("Vanguard")},
		{Symbol: strPtr("bb")},
		{Date: strPtr("2024-05-02")},
	}

	for _, a := range params {
		fa, err := ResolveFilter(a)
		require.NoError(t, err)
		onlyA := apply(fa, trades)

		for _, b := range params {
			combined := a
			if b.Name != nil {
				combined.Name = b.Name
			}
			if b.Symbol != nil {
				combined.Symbol = b.Symbol
			}
			if b.Date != nil {
				combined.Date = b.Date
			}
			fab, err := ResolveFilter(combined)
			require.NoError(t, err)

			for _, id := range apply(fab, trades) {
				assert.Contains(t, onlyA, id)
			}
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 5, 2, 15, 4, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-02"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
