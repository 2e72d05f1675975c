package model

// Category groups events. The quick-entry parser only reads ID and Name.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon,omitempty"`
	UserID string `json:"userId"`
	Order  int    `json:"order"`
}

// DefaultUserID owns data when no user is configured.
const DefaultUserID = "demo"

// DefaultCategoryID is used for events created when no category exists.
const DefaultCategoryID = "default"

// DefaultCategories is the set served while no categories have been saved.
func DefaultCategories(userID string) []Category {
	return []Category{
		{ID: "work", Name: "업무", Color: "#22C55E", Icon: "💼", UserID: userID, Order: 0},
		{ID: "personal", Name: "개인", Color: "#3B82F6", Icon: "👤", UserID: userID, Order: 1},
		{ID: "meeting", Name: "미팅", Color: "#F59E0B", Icon: "🤝", UserID: userID, Order: 2},
		{ID: "study", Name: "학습", Color: "#8B5CF6", Icon: "📚", UserID: userID, Order: 3},
	}
}
