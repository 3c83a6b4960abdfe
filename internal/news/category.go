package news

import "strings"

// Category is one section of the Top Stories API. The set is closed;
// AllCategories holds every valid value in display order.
type Category int

const (
	CategoryAll Category = iota
	CategoryArts
	CategoryAutomobiles
	CategoryBooks
	CategoryBusiness
	CategoryFashion
	CategoryFood
	CategoryHealth
	CategoryInsider
	CategoryMagazine
	CategoryMovies
	CategoryNational
	CategoryObituaries
	CategoryOpinion
	CategoryPolitics
	CategoryScience
	CategorySports
	CategoryTechnology
	CategoryTheater
	CategoryTravel
	CategoryUpshot
	CategoryWorld
)

var categoryLabels = map[Category]string{
	CategoryAll:         "All",
	CategoryArts:        "Arts",
	CategoryAutomobiles: "Automobiles",
	CategoryBooks:       "Books",
	CategoryBusiness:    "Business",
	CategoryFashion:     "Fashion",
	CategoryFood:        "Food",
	CategoryHealth:      "Health",
	CategoryInsider:     "Insider",
	CategoryMagazine:    "Magazine",
	CategoryMovies:      "Movies",
	CategoryNational:    "National",
	CategoryObituaries:  "Obituaries",
	CategoryOpinion:     "Opinion",
	CategoryPolitics:    "Politics",
	CategoryScience:     "Science",
	CategorySports:      "Sports",
	CategoryTechnology:  "Technology",
	CategoryTheater:     "Theater",
	CategoryTravel:      "Travel",
	CategoryUpshot:      "Upshot",
	CategoryWorld:       "World",
}

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryAll,
	CategoryArts,
	CategoryAutomobiles,
	CategoryBooks,
	CategoryBusiness,
	CategoryFashion,
	CategoryFood,
	CategoryHealth,
	CategoryInsider,
	CategoryMagazine,
	CategoryMovies,
	CategoryNational,
	CategoryObituaries,
	CategoryOpinion,
	CategoryPolitics,
	CategoryScience,
	CategorySports,
	CategoryTechnology,
	CategoryTheater,
	CategoryTravel,
	CategoryUpshot,
	CategoryWorld,
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "All"
}

// Endpoint returns the API path segment for the category. "All" maps to
// the aggregate "home" section, every other label lowercases itself.
func (c Category) Endpoint() string {
	if c == CategoryAll {
		return "home"
	}
	return strings.ToLower(c.String())
}

// Next returns the category following c in display order, wrapping around.
func (c Category) Next() Category {
	for i, cat := range AllCategories {
		if cat == c {
			return AllCategories[(i+1)%len(AllCategories)]
		}
	}
	return CategoryAll
}

// Prev returns the category preceding c in display order, wrapping around.
func (c Category) Prev() Category {
	for i, cat := range AllCategories {
		if cat == c {
			return AllCategories[(i-1+len(AllCategories))%len(AllCategories)]
		}
	}
	return CategoryAll
}

// ParseCategory resolves a label back to its category, defaulting to All.
func ParseCategory(label string) Category {
	for cat, l := range categoryLabels {
		if strings.EqualFold(l, label) {
			return cat
		}
	}
	return CategoryAll
}
