package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidFilter is returned for filter or category values outside their
// fixed tables. Validation happens before any upstream call.
var ErrInvalidFilter = errors.New("invalid filter")

// Orderings understood by FilterSet.Ordering. Anything else sorts by id.
const (
	OrderDefault    = ""
	OrderName       = "name"
	OrderNameDesc   = "-name"
	OrderHeight     = "height"
	OrderHeightDesc = "-height"
	OrderWeight     = "weight"
	OrderWeightDesc = "-weight"
)

// Height and weight buckets.
const (
	HeightSmall  = "small"
	HeightMedium = "medium"
	HeightLarge  = "large"

	WeightLight  = "light"
	WeightMedium = "medium"
	WeightHeavy  = "heavy"
)

// FilterSet holds the user-selected filters. An empty string leaves a
// filter unset.
type FilterSet struct {
	// Name is a case-insensitive substring, or a pure integer id that
	// bypasses the category listing.
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Weakness string `json:"weakness,omitempty"`
	Ability  string `json:"ability,omitempty"`
	Height   string `json:"height,omitempty"`
	Weight   string `json:"weight,omitempty"`
	// Generation, Region and Habitat are "1".."9".
	Generation string `json:"generation,omitempty"`
	Region     string `json:"region,omitempty"`
	Habitat    string `json:"habitat,omitempty"`
	Ordering   string `json:"ordering,omitempty"`
	// Page is 1-based; 0 means 1.
	Page int `json:"page,omitempty"`
}

// Field names a FilterSet field for With.
type Field string

const (
	FieldName       Field = "name"
	FieldType       Field = "type"
	FieldWeakness   Field = "weakness"
	FieldAbility    Field = "ability"
	FieldHeight     Field = "height"
	FieldWeight     Field = "weight"
	FieldGeneration Field = "generation"
	FieldRegion     Field = "region"
	FieldHabitat    Field = "habitat"
	FieldOrdering   Field = "ordering"
)

// Fields lists every settable field.
var Fields = []Field{
	FieldName, FieldType, FieldWeakness, FieldAbility, FieldHeight,
	FieldWeight, FieldGeneration, FieldRegion, FieldHabitat, FieldOrdering,
}

// With returns a copy with one field changed and the page reset to 1.
func (f FilterSet) With(field Field, value string) FilterSet {
	switch field {
	case FieldName:
		f.Name = value
	case FieldType:
		f.Type = value
	case FieldWeakness:
		f.Weakness = value
	case FieldAbility:
		f.Ability = value
	case FieldHeight:
		f.Height = value
	case FieldWeight:
		f.Weight = value
	case FieldGeneration:
		f.Generation = value
	case FieldRegion:
		f.Region = value
	case FieldHabitat:
		f.Habitat = value
	case FieldOrdering:
		f.Ordering = value
	}
	f.Page = 1
	return f
}

// NextPage returns a copy advanced by one page, other fields unchanged.
func (f FilterSet) NextPage() FilterSet {
	f.Page = f.PageNumber() + 1
	return f
}

// PageNumber returns the normalized 1-based page.
func (f FilterSet) PageNumber() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// NameID returns the id when Name is a pure integer string.
func (f FilterSet) NameID() (int, bool) {
	if f.Name == "" {
		return 0, false
	}
	for _, r := range f.Name {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(f.Name)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Validate checks every set field against its fixed table. Ordering is not
// checked: an unknown ordering sorts by id.
func (f FilterSet) Validate() error {
	if f.Page < 0 {
		return fmt.Errorf("%w: page %d", ErrInvalidFilter, f.Page)
	}
	if f.Type != "" && !IsKnownType(f.Type) {
		return fmt.Errorf("%w: type %q", ErrInvalidFilter, f.Type)
	}
	if f.Weakness != "" && !IsKnownType(f.Weakness) {
		return fmt.Errorf("%w: weakness %q", ErrInvalidFilter, f.Weakness)
	}
	switch f.Height {
	case "", HeightSmall, HeightMedium, HeightLarge:
	default:
		return fmt.Errorf("%w: height %q", ErrInvalidFilter, f.Height)
	}
	switch f.Weight {
	case "", WeightLight, WeightMedium, WeightHeavy:
	default:
		return fmt.Errorf("%w: weight %q", ErrInvalidFilter, f.Weight)
	}
	if f.Generation != "" {
		if _, ok := GenerationName(f.Generation); !ok {
			return fmt.Errorf("%w: generation %q", ErrInvalidFilter, f.Generation)
		}
	}
	if f.Region != "" {
		if _, ok := GenerationName(f.Region); !ok {
			return fmt.Errorf("%w: region %q", ErrInvalidFilter, f.Region)
		}
	}
	if f.Habitat != "" {
		if _, ok := HabitatName(f.Habitat); !ok {
			return fmt.Errorf("%w: habitat %q", ErrInvalidFilter, f.Habitat)
		}
	}
	return nil
}
