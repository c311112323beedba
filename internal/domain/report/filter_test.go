package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestResolveFilter(t *testing.T) {
	tests := []struct {
		name    string
		param   *string
		want    Growth
		ordered bool
	}{
		{"absent", nil, GrowthAny, false},
		{"positive", strPtr("positive"), GrowthPositive, true},
		{"negatif", strPtr("negatif"), GrowthNegative, true},
		{"english negative is unknown", strPtr("negative"), GrowthAny, false},
		{"empty", strPtr(""), GrowthAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ResolveFilter(Params{Type: tt.param})
			assert.Equal(t, tt.want, f.Growth)
			assert.Equal(t, tt.ordered, f.OrderBySubSectorDesc())
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	up := Report{AvgYoYQRevenueGrowth: decimal.RequireFromString("0.12")}
	down := Report{AvgYoYQRevenueGrowth: decimal.RequireFromString("-0.04")}
	flat := Report{AvgYoYQRevenueGrowth: decimal.Zero}

	pos := Filter{Growth: GrowthPositive}
	assert.True(t, pos.Matches(up))
	assert.False(t, pos.Matches(down))
	assert.False(t, pos.Matches(flat))

	neg := Filter{Growth: GrowthNegative}
	assert.False(t, neg.Matches(up))
	assert.True(t, neg.Matches(down))
	assert.False(t, neg.Matches(flat))

	assert.True(t, Filter{}.Matches(flat))
}

func TestCompaniesFilter_Inclusive(t *testing.T) {
	f := DefaultCompaniesFilter()

	for n, want := range map[int]bool{19: false, 20: true, 35: true, 50: true, 51: false, 0: false} {
		assert.Equal(t, want, f.Matches(Report{TotalCompanies: n}), "total_companies=%d", n)
	}
}
