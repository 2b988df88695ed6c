package models

// Education represents an education entry with an optional uploaded icon
type Education struct {
	ID           int64  `json:"id"`
	Degree       string `json:"degree"`
	DegreeType   string `json:"degree_type"`
	Institute    string `json:"institute"`
	InstituteURL string `json:"institute_url"`
	StartYear    string `json:"start_year"`
	EndYear      string `json:"end_year"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}
