package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListPokemon fetches one page of the unfiltered /pokemon listing.
func (c *Client) ListPokemon(ctx context.Context, offset, limit int) (*NamedResourceList, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var list NamedResourceList
	if err := c.GetJSON(ctx, "/pokemon", query, &list); err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return &list, nil
}

// GetPokemon fetches a Pokémon by numeric id or lowercase name.
func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	var p Pokemon
	if err := c.GetJSON(ctx, "/pokemon/"+url.PathEscape(idOrName), nil, &p); err != nil {
		return nil, fmt.Errorf("get pokemon %s: %w", idOrName, err)
	}
	return &p, nil
}

// GetSpeciesByURL follows the species link of a Pokémon payload.
func (c *Client) GetSpeciesByURL(ctx context.Context, speciesURL string) (*Species, error) {
	var s Species
	if err := c.GetJSONByURL(ctx, speciesURL, &s); err != nil {
		return nil, fmt.Errorf("get species: %w", err)
	}
	return &s, nil
}

// GetType fetches a type and the Pokémon that have it.
func (c *Client) GetType(ctx context.Context, name string) (*Type, error) {
	var t Type
	if err := c.GetJSON(ctx, "/type/"+url.PathEscape(name), nil, &t); err != nil {
		return nil, fmt.Errorf("get type %s: %w", name, err)
	}
	return &t, nil
}

// GetGeneration fetches a generation by id or name.
func (c *Client) GetGeneration(ctx context.Context, idOrName string) (*Generation, error) {
	var g Generation
	if err := c.GetJSON(ctx, "/generation/"+url.PathEscape(idOrName), nil, &g); err != nil {
		return nil, fmt.Errorf("get generation %s: %w", idOrName, err)
	}
	return &g, nil
}

// GetHabitat fetches a habitat by id or name.
func (c *Client) GetHabitat(ctx context.Context, idOrName string) (*Habitat, error) {
	var h Habitat
	if err := c.GetJSON(ctx, "/pokemon-habitat/"+url.PathEscape(idOrName), nil, &h); err != nil {
		return nil, fmt.Errorf("get habitat %s: %w", idOrName, err)
	}
	return &h, nil
}

// GetAbility fetches an ability and the Pokémon that can have it.
func (c *Client) GetAbility(ctx context.Context, name string) (*Ability, error) {
	var a Ability
	if err := c.GetJSON(ctx, "/ability/"+url.PathEscape(name), nil, &a); err != nil {
		return nil, fmt.Errorf("get ability %s: %w", name, err)
	}
	return &a, nil
}

// ResourceID extracts the trailing numeric id of a resource link such as
// "https://pokeapi.co/api/v2/pokemon-species/25/". Returns 0 when the link
// carries no id.
func ResourceID(resourceURL string) int {
	trimmed := strings.TrimRight(resourceURL, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[i+1:])
	if err != nil || id < 0 {
		return 0
	}
	return id
}
