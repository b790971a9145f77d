package catalog

// Seafood returns the bundled catalog of the seafood storefront. Pack sizes
// and prices mirror the shop's printed rate list.
func Seafood() *Catalog {
	return New([]Category{
		{
			Key:   "fish",
			Name:  "Fish & Seafood",
			Icon:  "🐟",
			Image: "/fish-category.jpg",
			Items: []MenuItem{
				item("fish-1", "Indian Salmon Fish", "500 gm", "₹400", "fish"),
				item("fish-2", "Indian Basa Boneless", "1 Kg", "₹500", "fish"),
				item("fish-3", "Fresh Semi Sole Snax Cut", "1 Kg", "₹500", "fish"),
				item("fish-4", "Queen Caribbean Boneless", "1 Kg", "₹600", "fish"),
				item("fish-5", "Singhara With Bone Fresh Cleaned", "1 Kg", "₹750", "fish"),
				item("fish-6", "Singhara Fish Boneless", "500 gm", "₹500", "fish"),
				item("fish-7", "River Sole Fish", "500 gm", "₹600", "fish"),
				item("fish-8", "Trout Rainbow", "1 Kg", "₹700", "fish"),
				item("fish-9", "Pomfret", "500 gm", "₹500", "fish"),
				item("fish-10", "Rohu Fish Cleaned", "1 Kg", "₹400", "fish"),
				item("fish-11", "Katla Fish Cleaned Cut Pieces", "1 Kg", "₹400", "fish"),
				item("fish-12", "Indian Mackerel", "1 Kg", "₹450", "fish"),
				item("fish-13", "Red Snapper", "500 gm", "₹500", "fish"),
				item("fish-14", "Fish Finger", "500 gm", "₹250", "fish"),
				item("fish-15", "Fish Kebab", "400 gm", "₹200", "fish"),
			},
		},
		{
			Key:   "prawns",
			Name:  "Prawns",
			Icon:  "🦐",
			Image: "/prawns-category.jpg",
			Items: []MenuItem{
				item("prawns-1", "Prawns Medium Cleaned", "500 gm", "₹450", "prawns"),
				item("prawns-2", "Prawns Large Cleaned", "500 gm", "₹600", "prawns"),
				item("prawns-3", "Jumbo Prawns", "500 gm", "₹850", "prawns"),
			},
		},
		{
			Key:   "chicken",
			Name:  "Chicken",
			Icon:  "🍗",
			Image: "/chicken-category.jpg",
			Items: []MenuItem{
				item("chicken-1", "Chicken Curry Cut", "1 Kg", "₹250", "chicken"),
				item("chicken-2", "Chicken Boneless", "1 Kg", "₹350", "chicken"),
				item("chicken-3", "Chicken Seekh Kebab", "500 gm", "₹300", "chicken"),
				item("chicken-4", "Chicken Momos", "400 gm", "₹200", "chicken"),
			},
		},
		{
			Key:   "mutton",
			Name:  "Mutton",
			Icon:  "🥩",
			Image: "/mutton-category.jpg",
			Items: []MenuItem{
				item("mutton-1", "Mutton Curry Cut", "1 Kg", "₹800", "mutton"),
				item("mutton-2", "Mutton Boneless", "1 Kg", "₹1,000", "mutton"),
				item("mutton-3", "Mutton Seekh Kebab", "500 gm", "₹450", "mutton"),
			},
		},
		{
			Key:   "veg",
			Name:  "Veg Specials",
			Icon:  "🥦",
			Image: "/veg-category.jpg",
			Items: []MenuItem{
				item("veg-1", "Veg Spring Rolls", "400 gm", "₹180", "veg"),
				item("veg-2", "French Fries", "500 gm", "₹150", "veg"),
			},
		},
	})
}

// Catering returns the bundled catalog of the catering marketplace
// storefront.
func Catering() *Catalog {
	return New([]Category{
		{
			Key:   "sweets",
			Name:  "Sweets",
			Icon:  "🍬",
			Image: "/sweets-category.jpg",
			Items: []MenuItem{
				item("sweets-1", "Motichoor Laddoo", "1 Kg", "₹450", "sweets"),
				item("sweets-2", "Kaju Katli", "500 gm", "₹600", "sweets"),
				item("sweets-3", "Gulab Jamun", "1 Kg", "₹350", "sweets"),
			},
		},
		{
			Key:   "snacks",
			Name:  "Snacks",
			Icon:  "🥟",
			Image: "/snacks-category.jpg",
			Items: []MenuItem{
				item("snacks-1", "Samosa", "25 pcs", "₹375", "snacks"),
				item("snacks-2", "Kachori", "25 pcs", "₹400", "snacks"),
				item("snacks-3", "Paneer Pakora", "1 Kg", "₹500", "snacks"),
			},
		},
		{
			Key:   "thali",
			Name:  "Catering Thali",
			Icon:  "🍛",
			Image: "/thali-category.jpg",
			Items: []MenuItem{
				item("thali-1", "Standard Veg Thali", "per plate", "₹180", "thali"),
				item("thali-2", "Deluxe Veg Thali", "per plate", "₹250", "thali"),
				item("thali-3", "Royal Wedding Thali", "per plate", "₹1,200", "thali"),
			},
		},
	})
}

func item(id, name, quantity, price, category string) MenuItem {
	return MenuItem{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Category: category,
		Image:    ItemImage(category, name),
	}
}
