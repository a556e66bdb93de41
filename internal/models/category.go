package models

// CategoryLabels is the fixed list offered by the UI, in display order.
// Labels map 1-indexed to category ids; "Comedy" appears twice upstream, so
// the label lookup is last-wins.
var CategoryLabels = []string{
	"Film & Animation",
	"Autos & Vehicles",
	"Music",
	"Pets & Animals",
	"Sports",
	"Short Movies",
	"Travel & Events",
	"Gaming",
	"Videoblogging",
	"People & Blogs",
	"Comedy",
	"Entertainment",
	"News & Politics",
	"Howto & Style",
	"Education",
	"Science & Technology",
	"Nonprofits & Activism",
	"Movies",
	"Anime/Animation",
	"Action/Adventure",
	"Classics",
	"Comedy",
	"Documentary",
	"Drama",
	"Family",
	"Foreign",
	"Horror",
	"Sci-Fi/Fantasy",
	"Thriller",
	"Shorts",
	"Shows",
	"Trailers",
}

type Category struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

var categoryIDs = buildCategoryIDs()

func buildCategoryIDs() map[string]int {
	m := make(map[string]int, len(CategoryLabels))
	for i, label := range CategoryLabels {
		m[label] = i + 1
	}
	return m
}

// CategoryIDForLabel resolves a display label to its 1-indexed category id.
func CategoryIDForLabel(label string) (int, bool) {
	id, ok := categoryIDs[label]
	return id, ok
}

// Categories returns the selectable list with resolved ids.
func Categories() []Category {
	out := make([]Category, len(CategoryLabels))
	for i, label := range CategoryLabels {
		out[i] = Category{ID: categoryIDs[label], Label: label}
	}
	return out
}

// ValidCategoryID reports whether id is inside the selectable range.
func ValidCategoryID(id int) bool {
	return id >= 1 && id <= len(CategoryLabels)
}
