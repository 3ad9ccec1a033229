package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "All matches every item", category: "All", want: 6},
		{name: "empty defaults to all", category: "", want: 6},
		{name: "Main Course", category: "Main Course", want: 3},
		{name: "Starters", category: "Starters", want: 1},
		{name: "unknown category matches nothing", category: "Sushi", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ByCategory(tt.category), tt.want)
		})
	}
}

func TestItemByID(t *testing.T) {
	item, ok := ItemByID(1)
	require.True(t, ok)
	assert.Equal(t, "Butter Chicken", item.Name)
	assert.Equal(t, 450.0, item.Price)

	_, ok = ItemByID(999)
	assert.False(t, ok)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("All"))
	assert.True(t, ValidCategory("Desserts"))
	assert.False(t, ValidCategory("all"))
	assert.False(t, ValidCategory(""))
}

func TestSearchMenu(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
		check  func(t *testing.T, names []string)
	}{
		{
			name:   "empty filter returns full menu",
			filter: SearchFilter{},
			check: func(t *testing.T, names []string) {
				assert.Len(t, names, len(Menu()))
			},
		},
		{
			name:   "term matches name case-insensitively",
			filter: SearchFilter{Term: "naan"},
			check: func(t *testing.T, names []string) {
				assert.ElementsMatch(t, []string{"Butter Naan", "Garlic Naan"}, names)
			},
		},
		{
			name:   "term matches description",
			filter: SearchFilter{Term: "saffron"},
			check: func(t *testing.T, names []string) {
				assert.ElementsMatch(t, []string{"Vegetable Biryani", "Rasmalai"}, names)
			},
		},
		{
			name:   "category facet",
			filter: SearchFilter{Category: "Beverages"},
			check: func(t *testing.T, names []string) {
				assert.ElementsMatch(t, []string{"Masala Chai", "Mango Lassi"}, names)
			},
		},
		{
			name:   "dietary vegetarian excludes meat dishes",
			filter: SearchFilter{Category: "Main Course", Dietary: "Vegetarian"},
			check: func(t *testing.T, names []string) {
				assert.ElementsMatch(t, []string{"Dal Makhani", "Palak Paneer"}, names)
			},
		},
		{
			name:   "dietary non-vegetarian",
			filter: SearchFilter{Term: "biryani", Dietary: "Non-Vegetarian"},
			check: func(t *testing.T, names []string) {
				assert.ElementsMatch(t, []string{"Hyderabadi Chicken Biryani"}, names)
			},
		},
		{
			name:   "combined filters can match nothing",
			filter: SearchFilter{Term: "lamb", Dietary: "Vegetarian"},
			check: func(t *testing.T, names []string) {
				assert.Empty(t, names)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, entry := range SearchMenu(tt.filter) {
				names = append(names, entry.Name)
			}
			tt.check(t, names)
		})
	}
}

func TestMenuCategoriesOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"All", "Starters", "Main Course", "Breads", "Rice & Biryani", "Desserts", "Beverages"},
		MenuCategories(),
	)
}
