package dto

import (
	"time"
)

// CreateMediaRequest carries the multipart form fields accompanying a file
// upload. The file itself is read from the "file" form part.
type CreateMediaRequest struct {
	Title string `form:"title"`
	Type  string `form:"type"`
	Body  string `form:"body"`
	Hero  bool   `form:"hero"`
}

// MediaResponse represents a stored media item
type MediaResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	File        string     `json:"file"`
	URL         string     `json:"url"`
	Body        string     `json:"body"`
	Author      string     `json:"author"`
	Hero        bool       `json:"hero"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
