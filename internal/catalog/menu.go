package catalog

import "github.com/spiceterra/webapi/internal/domain"

var menu = []domain.MenuEntry{
	{
		Category:    "Starters",
		Name:        "Paneer Tikka",
		Description: "Cottage cheese marinated in spices and grilled in tandoor",
		Price:       200,
		Vegetarian:  true,
		SpiceLevel:  2,
	},
	{
		Category:    "Starters",
		Name:        "Chicken Seekh Kabab",
		Description: "Minced chicken mixed with herbs and spices, grilled on skewers",
		Price:       320,
		Vegetarian:  false,
		SpiceLevel:  3,
	},
	{
		Category:    "Starters",
		Name:        "Samosa Chaat",
		Description: "Crispy samosas topped with chickpeas, yogurt, and chutneys",
		Price:       180,
		Vegetarian:  true,
		SpiceLevel:  2,
	},
	{
		Category:    "Main Course",
		Name:        "Butter Chicken",
		Description: "Tender chicken in creamy tomato gravy with butter and spices",
		Price:       350,
		Vegetarian:  false,
		SpiceLevel:  2,
	},
	{
		Category:    "Main Course",
		Name:        "Dal Makhani",
		Description: "Black lentils slow-cooked with cream and aromatic spices",
		Price:       220,
		Vegetarian:  true,
		SpiceLevel:  1,
	},
	{
		Category:    "Main Course",
		Name:        "Lamb Rogan Josh",
		Description: "Kashmiri specialty with tender lamb in rich aromatic gravy",
		Price:       580,
		Vegetarian:  false,
		SpiceLevel:  3,
	},
	{
		Category:    "Main Course",
		Name:        "Palak Paneer",
		Description: "Cottage cheese in creamy spinach gravy with spices",
		Price:       280,
		Vegetarian:  true,
		SpiceLevel:  2,
	},
	{
		Category:    "Breads",
		Name:        "Butter Naan",
		Description: "Soft leavened bread brushed with butter",
		Price:       80,
		Vegetarian:  true,
		SpiceLevel:  0,
	},
	{
		Category:    "Breads",
		Name:        "Garlic Naan",
		Description: "Naan topped with fresh garlic and cilantro",
		Price:       120,
		Vegetarian:  true,
		SpiceLevel:  1,
	},
	{
		Category:    "Rice & Biryani",
		Name:        "Hyderabadi Chicken Biryani",
		Description: "Aromatic basmati rice layered with marinated chicken and spices",
		Price:       450,
		Vegetarian:  false,
		SpiceLevel:  3,
	},
	{
		Category:    "Rice & Biryani",
		Name:        "Vegetable Biryani",
		Description: "Fragrant rice with seasonal vegetables and saffron",
		Price:       380,
		Vegetarian:  true,
		SpiceLevel:  2,
	},
	{
		Category:    "Desserts",
		Name:        "Gulab Jamun",
		Description: "Soft milk dumplings soaked in rose-flavored sugar syrup",
		Price:       50,
		Vegetarian:  true,
		SpiceLevel:  0,
	},
	{
		Category:    "Desserts",
		Name:        "Rasmalai",
		Description: "Cottage cheese patties in sweet saffron-flavored milk",
		Price:       80,
		Vegetarian:  true,
		SpiceLevel:  0,
	},
	{
		Category:    "Beverages",
		Name:        "Masala Chai",
		Description: "Traditional Indian tea with aromatic spices",
		Price:       50,
		Vegetarian:  true,
		SpiceLevel:  1,
	},
	{
		Category:    "Beverages",
		Name:        "Mango Lassi",
		Description: "Sweet yogurt drink blended with fresh mango",
		Price:       100,
		Vegetarian:  true,
		SpiceLevel:  0,
	},
}
