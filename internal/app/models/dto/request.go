package dto

// Form-bound request payloads for the admin interface. Every field is
// optional at binding time; required-field checks live in the services so
// a missing field surfaces as a validation error naming the field.

// ProjectForm carries the project create/edit form fields
type ProjectForm struct {
	Title       string `form:"title"`
	Subtitle    string `form:"subtitle"`
	Description string `form:"description"`
	TechStack   string `form:"tech_stack"`
	GithubURL   string `form:"github_url"`
	LiveURL     string `form:"live_url"`
}

// SkillForm carries the embedded skill create form fields
type SkillForm struct {
	Name     string `form:"name"`
	Level    string `form:"level"`
	Category string `form:"category"`
}

// CertificationForm carries the certification create/edit form fields
type CertificationForm struct {
	Name          string `form:"name"`
	Issuer        string `form:"issuer"`
	DateObtained  string `form:"date_obtained"`
	CredentialURL string `form:"credential_url"`
}

// ExperienceForm carries the experience create/edit form fields
type ExperienceForm struct {
	Role        string `form:"role"`
	Company     string `form:"company"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Location    string `form:"location"`
	Description string `form:"description"`
}

// EducationForm carries the education create/edit form fields
type EducationForm struct {
	Degree       string `form:"degree"`
	DegreeType   string `form:"degree_type"`
	Institute    string `form:"institute"`
	InstituteURL string `form:"institute_url"`
	StartYear    string `form:"start_year"`
	EndYear      string `form:"end_year"`
	Location     string `form:"location"`
	Description  string `form:"description"`
}

// ContactForm carries a visitor contact submission (form or JSON)
type ContactForm struct {
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}
