package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset int
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 20, 0, 20},
		{"negative page clamps to first", -4, 20, 0, 20},
		{"custom size", 2, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Window(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}

	page, more := Slice(items, 1, 20)
	assert.Equal(t, 20, len(page))
	assert.Equal(t, 1, page[0])
	assert.True(t, more)

	page, more = Slice(items, 3, 20)
	assert.Equal(t, []int{41, 42, 43, 44, 45}, page)
	assert.False(t, more)

	page, more = Slice(items, 4, 20)
	assert.Empty(t, page)
	assert.False(t, more)
}

func TestSlice_ExactBoundary(t *testing.T) {
	items := make([]string, 40)

	page, more := Slice(items, 2, 20)
	assert.Len(t, page, 20)
	assert.False(t, more, "no items beyond an exactly full last page")
}
