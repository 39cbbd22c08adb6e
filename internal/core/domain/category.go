package domain

// Category is a forum category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	TopicCount  int    `json:"topic_count"`
	PostCount   int    `json:"post_count"`
	Description string `json:"description"`
}

// CategoryFromDocument builds a Category from a category_list entry.
// The plain-text description lives under description_text.
func CategoryFromDocument(d Document) Category {
	return Category{
		ID:          d.Int("id", 0),
		Name:        d.String("name", ""),
		Slug:        d.String("slug", ""),
		TopicCount:  d.Int("topic_count", 0),
		PostCount:   d.Int("post_count", 0),
		Description: d.String("description_text", ""),
	}
}

// CategoriesFromList extracts category_list.categories[] from a categories document.
func CategoriesFromList(d Document) []Category {
	raw := d.Object("category_list").Objects("categories")
	cats := make([]Category, len(raw))
	for i := range raw {
		cats[i] = CategoryFromDocument(raw[i])
	}
	return cats
}
