package catalog

import "strconv"

// weaknessTable maps an attacking type to the defending types that take
// super-effective damage from it. A Pokémon matches a weakness filter when
// any of its types is listed; dual-type multipliers are not computed.
var weaknessTable = map[string][]string{
	"normal":   {},
	"fire":     {"grass", "ice", "bug", "steel"},
	"water":    {"fire", "ground", "rock"},
	"electric": {"water", "flying"},
	"grass":    {"water", "ground", "rock"},
	"ice":      {"grass", "ground", "flying", "dragon"},
	"fighting": {"normal", "ice", "rock", "dark", "steel"},
	"poison":   {"grass", "fairy"},
	"ground":   {"fire", "electric", "poison", "rock", "steel"},
	"flying":   {"grass", "fighting", "bug"},
	"psychic":  {"fighting", "poison"},
	"bug":      {"grass", "psychic", "dark"},
	"rock":     {"fire", "ice", "flying", "bug"},
	"ghost":    {"psychic", "ghost"},
	"dragon":   {"dragon"},
	"dark":     {"psychic", "ghost"},
	"steel":    {"ice", "rock", "fairy"},
	"fairy":    {"fighting", "dragon", "dark"},
}

var generationNames = []string{
	"generation-i", "generation-ii", "generation-iii",
	"generation-iv", "generation-v", "generation-vi",
	"generation-vii", "generation-viii", "generation-ix",
}

var habitatNames = []string{
	"cave", "forest", "grassland", "mountain", "rare",
	"rough-terrain", "sea", "urban", "waters-edge",
}

// IsKnownType reports whether name is one of the 18 battle types.
func IsKnownType(name string) bool {
	_, ok := weaknessTable[name]
	return ok
}

// WeakTo returns the defending types weak to the attacking type.
func WeakTo(attack string) []string {
	return append([]string(nil), weaknessTable[attack]...)
}

// GenerationName maps "1".."9" to "generation-i".."generation-ix". Regions
// use the same table.
func GenerationName(n string) (string, bool) {
	return lookup(generationNames, n)
}

// HabitatName maps "1".."9" to the upstream habitat names.
func HabitatName(id string) (string, bool) {
	return lookup(habitatNames, id)
}

func lookup(table []string, key string) (string, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 1 || i > len(table) {
		return "", false
	}
	return table[i-1], true
}

// HeightBucket classifies a height: small < 1 m <= medium <= 2 m < large.
func HeightBucket(meters float64) string {
	switch {
	case meters < 1:
		return HeightSmall
	case meters <= 2:
		return HeightMedium
	default:
		return HeightLarge
	}
}

// WeightBucket classifies a weight: light < 10 kg <= medium <= 50 kg < heavy.
func WeightBucket(kilograms float64) string {
	switch {
	case kilograms < 10:
		return WeightLight
	case kilograms <= 50:
		return WeightMedium
	default:
		return WeightHeavy
	}
}

type predicate func(Item) bool

// predicates returns the active filters in pipeline order: type, weakness,
// ability, height, weight, generation/region, habitat.
func (f FilterSet) predicates() []predicate {
	var ps []predicate

	if f.Type != "" {
		ps = append(ps, func(it Item) bool { return it.HasType(f.Type) })
	}
	if f.Weakness != "" {
		weak := weaknessTable[f.Weakness]
		ps = append(ps, func(it Item) bool {
			for _, t := range weak {
				if it.HasType(t) {
					return true
				}
			}
			return false
		})
	}
	if f.Ability != "" {
		ps = append(ps, func(it Item) bool { return it.HasAbility(f.Ability) })
	}
	if f.Height != "" {
		ps = append(ps, func(it Item) bool { return HeightBucket(it.HeightMeters) == f.Height })
	}
	if f.Weight != "" {
		ps = append(ps, func(it Item) bool { return WeightBucket(it.WeightKilograms) == f.Weight })
	}
	if gen, ok := GenerationName(f.Generation); ok {
		ps = append(ps, func(it Item) bool { return it.Generation == gen })
	}
	if gen, ok := GenerationName(f.Region); ok {
		ps = append(ps, func(it Item) bool { return it.Generation == gen })
	}
	if habitat, ok := HabitatName(f.Habitat); ok {
		ps = append(ps, func(it Item) bool { return it.Habitat == habitat })
	}
	return ps
}

// applyFilters returns the items passing every active filter, order kept.
func applyFilters(items []Item, f FilterSet) []Item {
	ps := f.predicates()
	if len(ps) == 0 {
		return items
	}

	out := items[:0:0]
	for _, it := range items {
		keep := true
		for _, p := range ps {
			if !p(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}
