package models

// Skill represents a single skill; Category is only used for grouping on
// the public page
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}
