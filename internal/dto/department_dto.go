package dto

import (
	"time"

	"gorm.io/datatypes"
)

// CreateDepartmentRequest represents the request to create a department.
// Slug is derived from the title when absent. JSON fields are opaque and
// stored verbatim; absent fields default to empty arrays.
type CreateDepartmentRequest struct {
	Title       string         `json:"title" binding:"required"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	HeroImage   string         `json:"hero_image"`
	Blocks      datatypes.JSON `json:"blocks"`
	Team        datatypes.JSON `json:"team"`
	Resources   datatypes.JSON `json:"resources"`
	Published   bool           `json:"published"`
}

// UpdateDepartmentRequest represents a partial update: only supplied fields
// change; updated_at is always refreshed.
type UpdateDepartmentRequest struct {
	Title       *string        `json:"title"`
	Slug        *string        `json:"slug"`
	Description *string        `json:"description"`
	HeroImage   *string        `json:"hero_image"`
	Blocks      datatypes.JSON `json:"blocks"`
	Team        datatypes.JSON `json:"team"`
	Resources   datatypes.JSON `json:"resources"`
	Published   *bool          `json:"published"`
}

// DepartmentData is the stored department representation as embedded in
// project detail responses (no derived statistics).
type DepartmentData struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	HeroImage   string         `json:"hero_image"`
	Blocks      datatypes.JSON `json:"blocks"`
	Team        datatypes.JSON `json:"team"`
	Resources   datatypes.JSON `json:"resources"`
	Published   bool           `json:"published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DepartmentResponse is a department enhanced with read-time statistics
// derived from its linked projects. The statistics are computed per request
// and never persisted.
type DepartmentResponse struct {
	DepartmentData
	TotalProjects     int `json:"total_projects"`
	CompletedProjects int `json:"completed_projects"`
	Drafts            int `json:"drafts"`
	ActiveProjects    int `json:"active_projects"`
	TeamSize          int `json:"team_size"`
}

// DepartmentDetailResponse additionally embeds the reduced projections of the
// department's linked projects, used by the detail endpoint only.
type DepartmentDetailResponse struct {
	DepartmentResponse
	Projects []ProjectSummary `json:"projects"`
}

// DepartmentSummary is the lightweight projection attached to project list
// responses as related_departments.
type DepartmentSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
