package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Params are the raw query parameters of GET /get-metadata-trade
// Each value is a comma separated list; nil means not sent
type Params struct {
	Slug   *string
	Sector *string
	ID     *string
}

// KeyParts returns the parameters in cache key order: slug, sector, id
func (p Params) KeyParts() []*string {
	return []*string{p.Slug, p.Sector, p.ID}
}

// Filter is the resolved query. Empty sets are not applied.
type Filter struct {
	Slugs        []string
	Sectors      []string
	SubSectorIDs []int64
}

// ResolveFilter validates raw parameters and builds a Filter
func ResolveFilter(p Params) (Filter, error) {
	f := Filter{
		Slugs:   SplitList(p.Slug),
		Sectors: SplitList(p.Sector),
	}

	for _, raw := range SplitList(p.ID) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %q", ErrInvalidSubSectorID, raw)
		}
		f.SubSectorIDs = append(f.SubSectorIDs, id)
	}

	return f, nil
}

// SplitList splits a comma separated parameter, trimming items and
// dropping empty ones
func SplitList(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(*raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Matches evaluates the filter against a single record
func (f Filter) Matches(c Company) bool {
	if len(f.Slugs) > 0 && !contains(f.Slugs, c.Slug) {
		return false
	}
	if len(f.Sectors) > 0 && !contains(f.Sectors, c.Sector) {
		return false
	}
	if len(f.SubSectorIDs) > 0 && !contains(f.SubSectorIDs, c.SubSectorID) {
		return false
	}
	return true
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
