package models

// Certification represents an obtained certification.
// DateObtained is stored as free text, not parsed.
type Certification struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	DateObtained  string `json:"date_obtained"`
	CredentialURL string `json:"credential_url"`
}
