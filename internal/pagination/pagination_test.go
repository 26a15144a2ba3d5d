package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{
			name:    "middle of a long list",
			current: 5,
			total:   10,
			want:    []int{1, Gap, 4, 5, 6, Gap, 10},
		},
		{
			name:    "first page",
			current: 1,
			total:   10,
			want:    []int{1, 2, Gap, 10},
		},
		{
			name:    "last page",
			current: 10,
			total:   10,
			want:    []int{1, Gap, 9, 10},
		},
		{
			name:    "no gap between contiguous neighbours",
			current: 3,
			total:   5,
			want:    []int{1, 2, 3, 4, 5},
		},
		{
			name:    "single page",
			current: 1,
			total:   1,
			want:    []int{1},
		},
		{
			name:    "two pages",
			current: 2,
			total:   2,
			want:    []int{1, 2},
		},
		{
			name:    "current clamped above total",
			current: 99,
			total:   3,
			want:    []int{1, 2, 3},
		},
		{
			name:    "current clamped below one",
			current: 0,
			total:   4,
			want:    []int{1, 2, Gap, 4},
		},
		{
			name:    "no pages",
			current: 1,
			total:   0,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.total))
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, 45, meta.TotalItems)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, []int{1, 2, 3, Gap, 5}, meta.Window)
}

func TestNewMetaDefaults(t *testing.T) {
	meta := NewMeta(0, 0, 25)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, DefaultPerPage, meta.PerPage)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestNewMetaPageBeyondLast(t *testing.T) {
	meta := NewMeta(9, 10, 25)

	assert.Equal(t, 3, meta.Page)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		totalItems int
		wantStart  int
		wantEnd    int
	}{
		{"first page", 1, 10, 25, 0, 10},
		{"middle page", 2, 10, 25, 10, 20},
		{"partial last page", 3, 10, 25, 20, 25},
		{"page past the end", 5, 10, 25, 0, 0},
		{"empty list", 1, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.page, tt.perPage, tt.totalItems)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("   ", "anything"))
	assert.True(t, MatchesSearch("burger", "Classic Burger"))
	assert.True(t, MatchesSearch("BURGER", "classic burger"))
	assert.False(t, MatchesSearch("pizza", "Classic Burger"))

	// one search box covers both languages
	assert.True(t, MatchesSearch("برغر", "Burger", "برغر كلاسيكي"))
	assert.False(t, MatchesSearch("بيتزا", "Burger", "برغر كلاسيكي"))
}
