// Package scoring computes domain subtotals and the grand total for an
// assessment from a response snapshot against the fixed item catalog.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/response"
)

// Totals holds the accumulated weight of achieved items per domain and
// the grand total across all eight domains.
type Totals struct {
	ByDomain map[catalog.Domain]float64 `json:"by_domain"`
	Grand    float64                    `json:"grand"`
}

// Score is a pure function of the catalog and a response snapshot. Only
// YES contributes; NO and NOT_TESTED score zero. Accumulation runs in
// integer tenths so fractional weights add exactly, and the grand total
// is the sum of the eight domain accumulators rather than a second scan,
// which makes Grand == Σ ByDomain hold by construction.
func Score(c *catalog.Catalog, snap response.Snapshot) Totals {
	tenths := make(map[catalog.Domain]int64, len(catalog.Domains))
	for _, d := range catalog.Domains {
		tenths[d] = 0
	}

	for _, item := range c.AllItems() {
		if snap[item.ID] != response.Yes {
			continue
		}
		tenths[item.Domain] += int64(math.Round(item.Weight * 10))
	}

	t := Totals{ByDomain: make(map[catalog.Domain]float64, len(tenths))}
	var grand int64
	for d, v := range tenths {
		t.ByDomain[d] = float64(v) / 10
		grand += v
	}
	t.Grand = float64(grand) / 10
	return t
}

// FormatScore renders a score to one decimal place with a trailing ".0"
// stripped: 24 -> "24", 7.5 -> "7.5".
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
