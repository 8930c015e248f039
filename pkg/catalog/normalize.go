package catalog

import (
	"github.com/Sternrassler/pokeapi-catalog/pkg/client"
)

// NewItem normalizes a Pokémon payload and its species. A nil species
// leaves generation empty and habitat unknown.
func NewItem(p *client.Pokemon, species *client.Species) Item {
	item := Item{
		ID:              p.ID,
		Name:            p.Name,
		ImageURL:        imageURL(p.Sprites),
		HeightMeters:    float64(p.Height) / 10,
		WeightKilograms: float64(p.Weight) / 10,
		Types:           make([]TypeRef, 0, len(p.Types)),
		Abilities:       make([]AbilityRef, 0, len(p.Abilities)),
		Stats:           stats(p.Stats),
		Habitat:         UnknownHabitat,
	}

	for _, t := range p.Types {
		item.Types = append(item.Types, TypeRef{Name: t.Type.Name})
	}
	for _, a := range p.Abilities {
		item.Abilities = append(item.Abilities, AbilityRef{Name: a.Ability.Name, IsHidden: a.IsHidden})
	}

	if species != nil {
		item.Generation = species.Generation.Name
		if species.Habitat != nil && species.Habitat.Name != "" {
			item.Habitat = species.Habitat.Name
		}
		if species.EvolutionChain != nil {
			item.EvolutionChainURL = species.EvolutionChain.URL
		}
	}

	return item
}

// imageURL walks official artwork, then the default sprite, then the
// placeholder.
func imageURL(s client.Sprites) string {
	if u := s.Other.OfficialArtwork.FrontDefault; u != nil && *u != "" {
		return *u
	}
	if u := s.FrontDefault; u != nil && *u != "" {
		return *u
	}
	return PlaceholderImageURL
}

// stats returns the six base stats in StatNames order; missing ones are 0.
func stats(in []client.BaseStat) []Stat {
	out := make([]Stat, len(StatNames))
	for i, name := range StatNames {
		out[i] = Stat{Name: name}
		for _, s := range in {
			if s.Stat.Name == name {
				out[i].Value = s.BaseStat
				break
			}
		}
	}
	return out
}
