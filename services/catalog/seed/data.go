// Package seed holds the embedded dataset the reseed operation loads.
// The catalog core only sees its call pattern: one Create per entry.
package seed

import "github.com/ghuser/shopcatalog/services/catalog/domain/models"

// Dataset returns a fresh copy of the seed entries so callers can't mutate
// the package-level data between reseeds.
func Dataset() []models.ProductAttrs {
	out := make([]models.ProductAttrs, len(entries))
	copy(out, entries)
	return out
}

var entries = []models.ProductAttrs{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Description: "Introducing the softest crew neck in the collection, made from double-knit fabric with a classic fit.",
		Price:       75,
		Stock:       7,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		ImageURLs:   []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Description: "A lightweight quilted jacket with a cropped silhouette and signature hexagonal stitching.",
		Price:       200,
		Stock:       5,
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		ImageURLs:   []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Description: "A premium bomber with a modern silhouette, broken-in feel, and a hidden chest pocket.",
		Price:       130,
		Stock:       10,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		ImageURLs:   []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Description: "An insulated cropped puffer with a fixed hood and elastic hem, built for transitional weather.",
		Price:       225,
		Stock:       85,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		ImageURLs:   []string{"1654219-00-A_0_2000.jpg", "1654219-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Description: "A soft double-knit cropped hoodie with a half-zip scuba collar and elastic hem.",
		Price:       130,
		Stock:       10,
		Sizes:       []string{"XS", "S", "M", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		ImageURLs:   []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Description: "A bomber jacket made for the future ride, with a glow-in-the-dark logo on the back.",
		Price:       65,
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		ImageURLs:   []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
	{
		Title:       "Unisex Corp Jacket",
		Description: "A classic corp jacket in navy with an adjustable waist and zippered hand pockets.",
		Price:       50,
		Stock:       71,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "unisex",
		Tags:        []string{"jacket"},
		ImageURLs:   []string{"9351031-00-A_0_2000.jpg", "9351031-00-A_1.jpg"},
	},
}
