package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortItems stable-sorts items in place by ordering. Unknown orderings sort
// by ascending id.
func sortItems(items []Item, ordering string) {
	var less func(a, b Item) bool

	switch ordering {
	case OrderName, OrderNameDesc:
		// Collators keep internal buffers and are not safe for concurrent use.
		col := collate.New(language.English)
		if ordering == OrderName {
			less = func(a, b Item) bool { return col.CompareString(a.Name, b.Name) < 0 }
		} else {
			less = func(a, b Item) bool { return col.CompareString(a.Name, b.Name) > 0 }
		}
	case OrderHeight:
		less = func(a, b Item) bool { return a.HeightMeters < b.HeightMeters }
	case OrderHeightDesc:
		less = func(a, b Item) bool { return a.HeightMeters > b.HeightMeters }
	case OrderWeight:
		less = func(a, b Item) bool { return a.WeightKilograms < b.WeightKilograms }
	case OrderWeightDesc:
		less = func(a, b Item) bool { return a.WeightKilograms > b.WeightKilograms }
	default:
		less = func(a, b Item) bool { return a.ID < b.ID }
	}

	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
