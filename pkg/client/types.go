package client

// NamedAPIResource is a reference to another upstream resource.
type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is an unnamed reference to another upstream resource.
type APIResource struct {
	URL string `json:"url"`
}

// NamedResourceList is the payload of every paginated listing endpoint.
type NamedResourceList struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []NamedAPIResource `json:"results"`
}

// HasNext reports whether the listing has a further page.
func (l *NamedResourceList) HasNext() bool {
	return l != nil && l.Next != nil && *l.Next != ""
}

// Pokemon is the /pokemon/{id} detail payload, trimmed to the fields the
// catalog uses.
type Pokemon struct {
	ID int `json:"id"`
	// Lowercase canonical identifier.
	Name string `json:"name"`
	// Height in decimeters.
	Height int `json:"height"`
	// Weight in hectograms.
	Weight    int              `json:"weight"`
	Sprites   Sprites          `json:"sprites"`
	Types     []TypeSlot       `json:"types"`
	Abilities []AbilitySlot    `json:"abilities"`
	Stats     []BaseStat       `json:"stats"`
	Species   NamedAPIResource `json:"species"`
}

// Sprites holds image URLs; any of them may be null upstream.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the alternate artwork sets.
type OtherSprites struct {
	OfficialArtwork SpriteSet `json:"official-artwork"`
}

// SpriteSet is a single artwork set.
type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
}

type TypeSlot struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

type AbilitySlot struct {
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
	Ability  NamedAPIResource `json:"ability"`
}

type BaseStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedAPIResource `json:"stat"`
}

// Species is the /pokemon-species/{id} payload.
type Species struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Generation     NamedAPIResource  `json:"generation"`
	Habitat        *NamedAPIResource `json:"habitat"`
	EvolutionChain *APIResource      `json:"evolution_chain"`
}

// Type is the /type/{name} payload.
type Type struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []TypePokemon `json:"pokemon"`
}

type TypePokemon struct {
	Slot    int              `json:"slot"`
	Pokemon NamedAPIResource `json:"pokemon"`
}

// Generation is the /generation/{id} payload.
type Generation struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	MainRegion     NamedAPIResource   `json:"main_region"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// Habitat is the /pokemon-habitat/{id} payload.
type Habitat struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// Ability is the /ability/{name} payload.
type Ability struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Pokemon []AbilityPokemon `json:"pokemon"`
}

type AbilityPokemon struct {
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
	Pokemon  NamedAPIResource `json:"pokemon"`
}
