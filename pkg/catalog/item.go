package catalog

// PlaceholderImageURL is served when an item has neither official artwork
// nor a default sprite.
const PlaceholderImageURL = "/images/placeholder.png"

// UnknownHabitat is the habitat of species without one upstream.
const UnknownHabitat = "unknown"

// StatNames is the fixed order of Item.Stats.
var StatNames = [6]string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// TypeRef names one of an item's types.
type TypeRef struct {
	Name string `json:"name"`
}

// AbilityRef names one of an item's abilities.
type AbilityRef struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// Stat is one base stat.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Item is the normalized view of one Pokémon. Items are built once per
// fetch; a refetch produces new values.
type Item struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	ImageURL        string       `json:"image_url"`
	HeightMeters    float64      `json:"height_m"`
	WeightKilograms float64      `json:"weight_kg"`
	Types           []TypeRef    `json:"types"`
	Abilities       []AbilityRef `json:"abilities"`
	Stats           []Stat       `json:"stats"`
	Generation      string       `json:"generation"`
	Habitat         string       `json:"habitat"`

	EvolutionChainURL string `json:"evolution_chain_url,omitempty"`
}

// MainType returns the first type, or "" when the item has none.
func (i Item) MainType() string {
	if len(i.Types) == 0 {
		return ""
	}
	return i.Types[0].Name
}

// HasType reports whether the item has the named type.
func (i Item) HasType(name string) bool {
	for _, t := range i.Types {
		if t.Name == name {
			return true
		}
	}
	return false
}

// HasAbility reports whether the item can have the named ability, hidden
// abilities included.
func (i Item) HasAbility(name string) bool {
	for _, a := range i.Abilities {
		if a.Name == name {
			return true
		}
	}
	return false
}

// StatValue returns the value of the named stat, or 0.
func (i Item) StatValue(name string) int {
	for _, s := range i.Stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}
