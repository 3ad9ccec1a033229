package catalog

import (
	"strings"

	"github.com/spiceterra/webapi/internal/domain"
)

// Categories are the orderable catalog facets. "All" matches every item and
// is the default.
var Categories = []string{"All", "Starters", "Main Course", "Breads", "Desserts"}

var items = []domain.MenuItem{
	{ID: 1, Category: "Main Course", Name: "Butter Chicken", Price: 450, Image: "dish-butter-chicken.jpg"},
	{ID: 2, Category: "Main Course", Name: "Chicken Biryani", Price: 480, Image: "dish-biryani.jpg"},
	{ID: 3, Category: "Breads", Name: "Garlic Naan", Price: 120, Image: "dish-naan.jpg"},
	{ID: 4, Category: "Main Course", Name: "Dal Makhani", Price: 320, Image: "dish-butter-chicken.jpg"},
	{ID: 5, Category: "Starters", Name: "Paneer Tikka", Price: 280, Image: "dish-naan.jpg"},
	{ID: 6, Category: "Desserts", Name: "Gulab Jamun", Price: 150, Image: "dish-biryani.jpg"},
}

// Items returns every orderable item
func Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}

// ByCategory returns the items matching one category facet
func ByCategory(category string) []domain.MenuItem {
	if category == "" || category == "All" {
		return Items()
	}
	var out []domain.MenuItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ItemByID looks up one orderable item by its identity
func ItemByID(id int) (domain.MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// ValidCategory reports whether category is a known facet
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// SearchFilter narrows the full menu. Term matches name or description
// case-insensitively; Category "" or "All" matches everything; Dietary is
// "Vegetarian", "Non-Vegetarian" or empty for no constraint.
type SearchFilter struct {
	Term     string
	Category string
	Dietary  string
}

// SearchMenu applies a filter over the full descriptive menu
func SearchMenu(filter SearchFilter) []domain.MenuEntry {
	term := strings.ToLower(filter.Term)

	var out []domain.MenuEntry
	for _, entry := range menu {
		if term != "" &&
			!strings.Contains(strings.ToLower(entry.Name), term) &&
			!strings.Contains(strings.ToLower(entry.Description), term) {
			continue
		}
		if filter.Category != "" && filter.Category != "All" && entry.Category != filter.Category {
			continue
		}
		switch filter.Dietary {
		case "Vegetarian":
			if !entry.Vegetarian {
				continue
			}
		case "Non-Vegetarian":
			if entry.Vegetarian {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

// Menu returns the full descriptive menu
func Menu() []domain.MenuEntry {
	out := make([]domain.MenuEntry, len(menu))
	copy(out, menu)
	return out
}

// MenuCategories returns "All" followed by each distinct menu category in
// first-seen order
func MenuCategories() []string {
	out := []string{"All"}
	seen := make(map[string]bool)
	for _, entry := range menu {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	return out
}
