package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	id   int
	name string
}

func TestAccumulator_DeduplicatesByKey(t *testing.T) {
	acc := NewAccumulator(func(e entry) int { return e.id })

	added := acc.Append(entry{1, "bulbasaur"}, entry{2, "ivysaur"})
	assert.Len(t, added, 2)

	added = acc.Append(entry{2, "ivysaur"}, entry{3, "venusaur"}, entry{1, "bulbasaur"})
	assert.Equal(t, []entry{{3, "venusaur"}}, added)

	assert.Equal(t, 3, acc.Len())
	assert.Equal(t, []entry{{1, "bulbasaur"}, {2, "ivysaur"}, {3, "venusaur"}}, acc.Items())
}

func TestAccumulator_DuplicatesWithinOneAppend(t *testing.T) {
	acc := NewAccumulator(func(e entry) int { return e.id })

	added := acc.Append(entry{7, "squirtle"}, entry{7, "squirtle"})
	assert.Len(t, added, 1)
	assert.Equal(t, 1, acc.Len())
}

func TestAccumulator_ItemsIsACopy(t *testing.T) {
	acc := NewAccumulator(func(e entry) int { return e.id })
	acc.Append(entry{1, "bulbasaur"})

	items := acc.Items()
	items[0].name = "changed"

	assert.Equal(t, "bulbasaur", acc.Items()[0].name)
}

func TestAccumulator_Reset(t *testing.T) {
	acc := NewAccumulator(func(e entry) int { return e.id })
	acc.Append(entry{1, "bulbasaur"})
	acc.Reset()

	assert.Equal(t, 0, acc.Len())
	assert.Len(t, acc.Append(entry{1, "bulbasaur"}), 1)
}
