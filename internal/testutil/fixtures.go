package testutil

// DefaultFixtures returns the first thirty national-dex entries plus three
// later-generation starters. Heights are decimeters, weights hectograms.
// nidorina has no official artwork; nidoran-f has no images at all; treecko
// has no habitat.
func DefaultFixtures() []PokemonFixture {
	return []PokemonFixture{
		{ID: 1, Name: "bulbasaur", Height: 7, Weight: 69, Types: []string{"grass", "poison"}, Abilities: []AbilityFixture{{Name: "overgrow"}, {Name: "chlorophyll", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 2, Name: "ivysaur", Height: 10, Weight: 130, Types: []string{"grass", "poison"}, Abilities: []AbilityFixture{{Name: "overgrow"}, {Name: "chlorophyll", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 3, Name: "venusaur", Height: 20, Weight: 1000, Types: []string{"grass", "poison"}, Abilities: []AbilityFixture{{Name: "overgrow"}, {Name: "chlorophyll", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 4, Name: "charmander", Height: 6, Weight: 85, Types: []string{"fire"}, Abilities: []AbilityFixture{{Name: "blaze"}, {Name: "solar-power", Hidden: true}}, Generation: 1, Habitat: "mountain"},
		{ID: 5, Name: "charmeleon", Height: 11, Weight: 190, Types: []string{"fire"}, Abilities: []AbilityFixture{{Name: "blaze"}, {Name: "solar-power", Hidden: true}}, Generation: 1, Habitat: "mountain"},
		{ID: 6, Name: "charizard", Height: 17, Weight: 905, Types: []string{"fire", "flying"}, Abilities: []AbilityFixture{{Name: "blaze"}, {Name: "solar-power", Hidden: true}}, Generation: 1, Habitat: "mountain"},
		{ID: 7, Name: "squirtle", Height: 5, Weight: 90, Types: []string{"water"}, Abilities: []AbilityFixture{{Name: "torrent"}, {Name: "rain-dish", Hidden: true}}, Generation: 1, Habitat: "waters-edge"},
		{ID: 8, Name: "wartortle", Height: 10, Weight: 225, Types: []string{"water"}, Abilities: []AbilityFixture{{Name: "torrent"}, {Name: "rain-dish", Hidden: true}}, Generation: 1, Habitat: "waters-edge"},
		{ID: 9, Name: "blastoise", Height: 16, Weight: 855, Types: []string{"water"}, Abilities: []AbilityFixture{{Name: "torrent"}, {Name: "rain-dish", Hidden: true}}, Generation: 1, Habitat: "waters-edge"},
		{ID: 10, Name: "caterpie", Height: 3, Weight: 29, Types: []string{"bug"}, Abilities: []AbilityFixture{{Name: "shield-dust"}, {Name: "run-away", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 11, Name: "metapod", Height: 7, Weight: 99, Types: []string{"bug"}, Abilities: []AbilityFixture{{Name: "shed-skin"}}, Generation: 1, Habitat: "forest"},
		{ID: 12, Name: "butterfree", Height: 11, Weight: 320, Types: []string{"bug", "flying"}, Abilities: []AbilityFixture{{Name: "compound-eyes"}, {Name: "tinted-lens", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 13, Name: "weedle", Height: 3, Weight: 32, Types: []string{"bug", "poison"}, Abilities: []AbilityFixture{{Name: "shield-dust"}, {Name: "run-away", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 14, Name: "kakuna", Height: 6, Weight: 100, Types: []string{"bug", "poison"}, Abilities: []AbilityFixture{{Name: "shed-skin"}}, Generation: 1, Habitat: "forest"},
		{ID: 15, Name: "beedrill", Height: 10, Weight: 295, Types: []string{"bug", "poison"}, Abilities: []AbilityFixture{{Name: "swarm"}, {Name: "sniper", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 16, Name: "pidgey", Height: 3, Weight: 18, Types: []string{"normal", "flying"}, Abilities: []AbilityFixture{{Name: "keen-eye"}, {Name: "tangled-feet"}, {Name: "big-pecks", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 17, Name: "pidgeotto", Height: 11, Weight: 300, Types: []string{"normal", "flying"}, Abilities: []AbilityFixture{{Name: "keen-eye"}, {Name: "tangled-feet"}, {Name: "big-pecks", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 18, Name: "pidgeot", Height: 15, Weight: 395, Types: []string{"normal", "flying"}, Abilities: []AbilityFixture{{Name: "keen-eye"}, {Name: "tangled-feet"}, {Name: "big-pecks", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 19, Name: "rattata", Height: 3, Weight: 35, Types: []string{"normal"}, Abilities: []AbilityFixture{{Name: "run-away"}, {Name: "guts"}, {Name: "hustle", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 20, Name: "raticate", Height: 7, Weight: 185, Types: []string{"normal"}, Abilities: []AbilityFixture{{Name: "run-away"}, {Name: "guts"}, {Name: "hustle", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 21, Name: "spearow", Height: 3, Weight: 20, Types: []string{"normal", "flying"}, Abilities: []AbilityFixture{{Name: "keen-eye"}, {Name: "sniper", Hidden: true}}, Generation: 1, Habitat: "rough-terrain"},
		{ID: 22, Name: "fearow", Height: 12, Weight: 380, Types: []string{"normal", "flying"}, Abilities: []AbilityFixture{{Name: "keen-eye"}, {Name: "sniper", Hidden: true}}, Generation: 1, Habitat: "rough-terrain"},
		{ID: 23, Name: "ekans", Height: 20, Weight: 69, Types: []string{"poison"}, Abilities: []AbilityFixture{{Name: "intimidate"}, {Name: "shed-skin"}, {Name: "unnerve", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 24, Name: "arbok", Height: 35, Weight: 650, Types: []string{"poison"}, Abilities: []AbilityFixture{{Name: "intimidate"}, {Name: "shed-skin"}, {Name: "unnerve", Hidden: true}}, Generation: 1, Habitat: "grassland"},
		{ID: 25, Name: "pikachu", Height: 4, Weight: 60, Types: []string{"electric"}, Abilities: []AbilityFixture{{Name: "static"}, {Name: "lightning-rod", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 26, Name: "raichu", Height: 8, Weight: 300, Types: []string{"electric"}, Abilities: []AbilityFixture{{Name: "static"}, {Name: "lightning-rod", Hidden: true}}, Generation: 1, Habitat: "forest"},
		{ID: 27, Name: "sandshrew", Height: 6, Weight: 120, Types: []string{"ground"}, Abilities: []AbilityFixture{{Name: "sand-veil"}, {Name: "sand-rush", Hidden: true}}, Generation: 1, Habitat: "rough-terrain"},
		{ID: 28, Name: "sandslash", Height: 10, Weight: 295, Types: []string{"ground"}, Abilities: []AbilityFixture{{Name: "sand-veil"}, {Name: "sand-rush", Hidden: true}}, Generation: 1, Habitat: "rough-terrain"},
		{ID: 29, Name: "nidoran-f", Height: 4, Weight: 70, Types: []string{"poison"}, Abilities: []AbilityFixture{{Name: "poison-point"}, {Name: "rivalry"}, {Name: "hustle", Hidden: true}}, Generation: 1, Habitat: "grassland", NoArtwork: true, NoSprite: true},
		{ID: 30, Name: "nidorina", Height: 8, Weight: 200, Types: []string{"poison"}, Abilities: []AbilityFixture{{Name: "poison-point"}, {Name: "rivalry"}, {Name: "hustle", Hidden: true}}, Generation: 1, Habitat: "grassland", NoArtwork: true},
		{ID: 152, Name: "chikorita", Height: 9, Weight: 64, Types: []string{"grass"}, Abilities: []AbilityFixture{{Name: "overgrow"}, {Name: "leaf-guard", Hidden: true}}, Generation: 2, Habitat: "grassland"},
		{ID: 155, Name: "cyndaquil", Height: 5, Weight: 79, Types: []string{"fire"}, Abilities: []AbilityFixture{{Name: "blaze"}, {Name: "flash-fire", Hidden: true}}, Generation: 2, Habitat: "grassland"},
		{ID: 252, Name: "treecko", Height: 5, Weight: 50, Types: []string{"grass"}, Abilities: []AbilityFixture{{Name: "overgrow"}, {Name: "unburden", Hidden: true}}, Generation: 3, Habitat: ""},
	}
}
