package models

import "time"

// Project represents a portfolio project entry
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	TechStack   string    `json:"tech_stack"`
	GithubURL   string    `json:"github_url"`
	LiveURL     string    `json:"live_url"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
