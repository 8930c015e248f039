package catalog

import (
	"fmt"
	"strings"
)

// Dimension selects the upstream listing that seeds the candidate set.
type Dimension int

const (
	// DimensionNone pages through the unfiltered /pokemon listing.
	DimensionNone Dimension = iota
	// DimensionName searches the full name index.
	DimensionName
	DimensionType
	DimensionGeneration
	// DimensionRegion maps regions 1-9 onto generations 1-9.
	DimensionRegion
	DimensionHabitat
	DimensionAbility
)

var dimensionNames = map[Dimension]string{
	DimensionNone:       "none",
	DimensionName:       "name",
	DimensionType:       "type",
	DimensionGeneration: "generation",
	DimensionRegion:     "region",
	DimensionHabitat:    "habitat",
	DimensionAbility:    "ability",
}

// String returns the dimension's wire name.
func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// ParseDimension parses a wire name. The empty string is DimensionNone.
func ParseDimension(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DimensionNone, nil
	}
	for d, name := range dimensionNames {
		if name == s {
			return d, nil
		}
	}
	return DimensionNone, fmt.Errorf("%w: unknown dimension %q", ErrInvalidFilter, s)
}

// usesValue reports whether the dimension reads the category value.
func (d Dimension) usesValue() bool {
	return d != DimensionNone && d != DimensionName
}
