package dto

// ContactResponse is the JSON acknowledgment for a visitor contact submission
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
