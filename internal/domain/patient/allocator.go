package patient

import (
	"regexp"
	"strconv"
)

const (
	// IDPrefix is the fixed prefix of allocator-issued patient ids.
	IDPrefix = "VIN"
	// idBase is the suffix of the first id ever issued.
	idBase = 100
)

// idPattern matches exactly IDPrefix followed by one or more digits.
// Ids with leading garbage, trailing characters or a different prefix do
// not participate in allocation.
var idPattern = regexp.MustCompile(`^VIN(\d+)$`)

// NextID derives the next sequential patient id from the set of
// previously issued ids. It is a pure function: callers refresh the
// collection after each submission and re-invoke it. Two clients working
// from the same stale collection can allocate the same id; that race is
// an accepted limitation of the single-clinician usage model.
func NextID(existing []string) string {
	max := -1
	for _, id := range existing {
		m := idPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	if max < 0 {
		return IDPrefix + strconv.Itoa(idBase)
	}
	return IDPrefix + strconv.Itoa(max+1)
}
