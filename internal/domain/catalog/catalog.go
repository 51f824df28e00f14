// Package catalog holds the fixed Vineland Social Maturity Scale item
// table: 89 skill items across 13 age blocks, each item belonging to one
// of eight behavioral domains. The table is static configuration data and
// never changes at runtime.
package catalog

import "fmt"

// Domain is one of the eight fixed VSMS behavioral categories.
type Domain string

const (
	SHG Domain = "SHG" // self-help general
	SHE Domain = "SHE" // self-help eating
	SHD Domain = "SHD" // self-help dressing
	SD  Domain = "SD"  // self-direction
	OCC Domain = "OCC" // occupation
	COM Domain = "COM" // communication
	LOC Domain = "LOC" // locomotion
	SOC Domain = "SOC" // socialization
)

// Domains lists all domain codes in display order.
var Domains = []Domain{SHG, SHE, SHD, SD, OCC, COM, LOC, SOC}

var domainNames = map[Domain]string{
	SHG: "Self-Help General",
	SHE: "Self-Help Eating",
	SHD: "Self-Help Dressing",
	SD:  "Self-Direction",
	OCC: "Occupation",
	COM: "Communication",
	LOC: "Locomotion",
	SOC: "Socialization",
}

// Name returns the display name for the domain code.
func (d Domain) Name() string { return domainNames[d] }

// Valid reports whether d is one of the eight fixed domain codes.
func (d Domain) Valid() bool {
	_, ok := domainNames[d]
	return ok
}

// ScaleItem is a single skill item of the scale.
type ScaleItem struct {
	ID       int     `json:"id"`
	Skill    string  `json:"skill"`
	Domain   Domain  `json:"domain"`
	AgeBlock string  `json:"age_block"`
	Weight   float64 `json:"weight"`
}

// AgeBlock is an ordered grouping of items by developmental age range.
type AgeBlock struct {
	Key   string      `json:"key"`   // e.g. "3-4"
	Label string      `json:"label"` // e.g. "III–IV"
	Items []ScaleItem `json:"items"`
}

// Scheme selects which of the two weighting configurations the catalog
// carries. The schemes are mutually exclusive; a process runs with one.
type Scheme string

const (
	// SchemeFlat credits one point per achieved item.
	SchemeFlat Scheme = "flat"
	// SchemeWeighted credits each item with its age block's fractional
	// month-credit weight.
	SchemeWeighted Scheme = "weighted"
)

// Catalog is the immutable item table for one weighting scheme.
type Catalog struct {
	scheme Scheme
	items  []ScaleItem
	blocks []AgeBlock
	byID   map[int]ScaleItem
}

// New builds the catalog for the given scheme. An unknown scheme is
// rejected so a typo in configuration fails at startup, not at scoring
// time.
func New(scheme Scheme) (*Catalog, error) {
	switch scheme {
	case SchemeFlat, SchemeWeighted:
	default:
		return nil, fmt.Errorf("unknown scoring scheme %q", scheme)
	}

	c := &Catalog{scheme: scheme, byID: make(map[int]ScaleItem, len(itemDefs))}
	for _, b := range blockDefs {
		block := AgeBlock{Key: b.key, Label: b.label}
		for _, d := range itemDefs {
			if d.block != b.key {
				continue
			}
			w := 1.0
			if scheme == SchemeWeighted {
				w = b.weight
			}
			item := ScaleItem{ID: d.id, Skill: d.skill, Domain: d.domain, AgeBlock: b.key, Weight: w}
			block.Items = append(block.Items, item)
			c.items = append(c.items, item)
			c.byID[d.id] = item
		}
		c.blocks = append(c.blocks, block)
	}
	return c, nil
}

// Flat returns the one-point-per-item catalog.
func Flat() *Catalog {
	c, _ := New(SchemeFlat)
	return c
}

// Weighted returns the officially weighted catalog.
func Weighted() *Catalog {
	c, _ := New(SchemeWeighted)
	return c
}

// Scheme returns the weighting scheme the catalog was built with.
func (c *Catalog) Scheme() Scheme { return c.scheme }

// AllItems returns every item in official scale order. The returned
// slice is shared; callers must not modify it.
func (c *Catalog) AllItems() []ScaleItem { return c.items }

// AgeBlocks returns the ordered age groupings with their items.
func (c *Catalog) AgeBlocks() []AgeBlock { return c.blocks }

// Item looks up an item by id.
func (c *Catalog) Item(id int) (ScaleItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items in the scale.
func (c *Catalog) Len() int { return len(c.items) }

// BlockLabel returns the display label for an age block key, or the key
// itself when unknown.
func BlockLabel(key string) string {
	for _, b := range blockDefs {
		if b.key == key {
			return b.label
		}
	}
	return key
}
