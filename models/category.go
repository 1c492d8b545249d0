package models

// DefaultCategories returns the seed category list used when storage is empty.
func DefaultCategories() []string {
	return []string{"Website Design", "Special Features", "Support"}
}
