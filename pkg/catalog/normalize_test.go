package catalog

import (
	"testing"

	"github.com/Sternrassler/pokeapi-catalog/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func pikachuPayload() *client.Pokemon {
	p := &client.Pokemon{
		ID:     25,
		Name:   "pikachu",
		Height: 4,
		Weight: 60,
		Types:  []client.TypeSlot{{Slot: 1, Type: client.NamedAPIResource{Name: "electric"}}},
		Abilities: []client.AbilitySlot{
			{Slot: 1, Ability: client.NamedAPIResource{Name: "static"}},
			{Slot: 3, IsHidden: true, Ability: client.NamedAPIResource{Name: "lightning-rod"}},
		},
		Stats: []client.BaseStat{
			{BaseStat: 90, Stat: client.NamedAPIResource{Name: "speed"}},
			{BaseStat: 35, Stat: client.NamedAPIResource{Name: "hp"}},
			{BaseStat: 55, Stat: client.NamedAPIResource{Name: "attack"}},
		},
	}
	p.Sprites.FrontDefault = strPtr("https://img/front/25.png")
	p.Sprites.Other.OfficialArtwork.FrontDefault = strPtr("https://img/artwork/25.png")
	return p
}

func TestNewItem(t *testing.T) {
	species := &client.Species{
		ID:             25,
		Generation:     client.NamedAPIResource{Name: "generation-i"},
		Habitat:        &client.NamedAPIResource{Name: "forest"},
		EvolutionChain: &client.APIResource{URL: "https://pokeapi.co/api/v2/evolution-chain/10/"},
	}

	item := NewItem(pikachuPayload(), species)

	assert.Equal(t, 25, item.ID)
	assert.Equal(t, "pikachu", item.Name)
	assert.InDelta(t, 0.4, item.HeightMeters, 1e-9)
	assert.InDelta(t, 6.0, item.WeightKilograms, 1e-9)
	assert.Equal(t, []TypeRef{{"electric"}}, item.Types)
	assert.Equal(t, "electric", item.MainType())
	assert.Equal(t, []AbilityRef{{"static", false}, {"lightning-rod", true}}, item.Abilities)
	assert.Equal(t, "https://img/artwork/25.png", item.ImageURL)
	assert.Equal(t, "generation-i", item.Generation)
	assert.Equal(t, "forest", item.Habitat)
	assert.Equal(t, "https://pokeapi.co/api/v2/evolution-chain/10/", item.EvolutionChainURL)
}

func TestNewItem_StatsFixedOrder(t *testing.T) {
	item := NewItem(pikachuPayload(), nil)

	require.Len(t, item.Stats, 6)
	for i, name := range StatNames {
		assert.Equal(t, name, item.Stats[i].Name)
	}
	assert.Equal(t, 35, item.StatValue("hp"))
	assert.Equal(t, 55, item.StatValue("attack"))
	assert.Equal(t, 0, item.StatValue("defense"), "missing stat is zero")
	assert.Equal(t, 90, item.StatValue("speed"))
}

func TestNewItem_ImageFallback(t *testing.T) {
	tests := []struct {
		name    string
		artwork *string
		sprite  *string
		want    string
	}{
		{"official artwork", strPtr("https://img/art.png"), strPtr("https://img/front.png"), "https://img/art.png"},
		{"sprite when artwork null", nil, strPtr("https://img/front.png"), "https://img/front.png"},
		{"sprite when artwork empty", strPtr(""), strPtr("https://img/front.png"), "https://img/front.png"},
		{"placeholder", nil, nil, PlaceholderImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pikachuPayload()
			p.Sprites.Other.OfficialArtwork.FrontDefault = tt.artwork
			p.Sprites.FrontDefault = tt.sprite

			assert.Equal(t, tt.want, NewItem(p, nil).ImageURL)
		})
	}
}

func TestNewItem_MissingSpeciesFields(t *testing.T) {
	species := &client.Species{Generation: client.NamedAPIResource{Name: "generation-iii"}}

	item := NewItem(pikachuPayload(), species)
	assert.Equal(t, "generation-iii", item.Generation)
	assert.Equal(t, UnknownHabitat, item.Habitat)
	assert.Empty(t, item.EvolutionChainURL)

	item = NewItem(pikachuPayload(), nil)
	assert.Empty(t, item.Generation)
	assert.Equal(t, UnknownHabitat, item.Habitat)
}

func TestNewItem_NoTypes(t *testing.T) {
	p := pikachuPayload()
	p.Types = nil

	item := NewItem(p, nil)
	assert.NotNil(t, item.Types)
	assert.Empty(t, item.MainType())
	assert.False(t, item.HasType("electric"))
}
