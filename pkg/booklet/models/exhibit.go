package models

// ExhibitRecord represents one exhibit submission form response.
type ExhibitRecord struct {
	// Title is the exhibit title as submitted.
	Title string `json:"title"`
	// Description is the public exhibit description; may be empty.
	Description string `json:"description"`
}
