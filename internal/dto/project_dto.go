package dto

import (
	"time"

	"gorm.io/datatypes"
)

// CreateProjectRequest represents the request to create a project. Department
// links may be supplied either as department_ids or as related_departments;
// department_ids wins when both are present.
type CreateProjectRequest struct {
	Title   string         `json:"title" binding:"required"`
	Slug    string         `json:"slug"`
	Summary string         `json:"summary"`
	Status  string         `json:"status"`
	Tags    datatypes.JSON `json:"tags"`
	Images  datatypes.JSON `json:"images"`
	Blocks  datatypes.JSON `json:"blocks"`

	Tagline             string         `json:"tagline"`
	PrimaryCTA          datatypes.JSON `json:"primary_cta"`
	SecondaryCTA        datatypes.JSON `json:"secondary_cta"`
	About               datatypes.JSON `json:"about"`
	Features            datatypes.JSON `json:"features"`
	Previews            datatypes.JSON `json:"previews"`
	TechnicalSpecs      datatypes.JSON `json:"technical_specs"`
	UseCases            datatypes.JSON `json:"use_cases"`
	Team                datatypes.JSON `json:"team"`
	Roadmap             datatypes.JSON `json:"roadmap"`
	RelatedProjectsData datatypes.JSON `json:"related_projects_data"`
	PlatformMetadata    datatypes.JSON `json:"platform_metadata"`

	DepartmentIDs      []uint `json:"department_ids"`
	RelatedDepartments []uint `json:"related_departments"`
}

// EffectiveDepartmentIDs resolves the two accepted link-list field names.
func (r *CreateProjectRequest) EffectiveDepartmentIDs() []uint {
	if r.DepartmentIDs != nil {
		return r.DepartmentIDs
	}
	return r.RelatedDepartments
}

// UpdateProjectRequest represents a partial update. A nil link list preserves
// existing links; an empty list clears them (full replacement, no diffing).
type UpdateProjectRequest struct {
	Title   *string        `json:"title"`
	Slug    *string        `json:"slug"`
	Summary *string        `json:"summary"`
	Status  *string        `json:"status"`
	Tags    datatypes.JSON `json:"tags"`
	Images  datatypes.JSON `json:"images"`
	Blocks  datatypes.JSON `json:"blocks"`

	Tagline             *string        `json:"tagline"`
	PrimaryCTA          datatypes.JSON `json:"primary_cta"`
	SecondaryCTA        datatypes.JSON `json:"secondary_cta"`
	About               datatypes.JSON `json:"about"`
	Features            datatypes.JSON `json:"features"`
	Previews            datatypes.JSON `json:"previews"`
	TechnicalSpecs      datatypes.JSON `json:"technical_specs"`
	UseCases            datatypes.JSON `json:"use_cases"`
	Team                datatypes.JSON `json:"team"`
	Roadmap             datatypes.JSON `json:"roadmap"`
	RelatedProjectsData datatypes.JSON `json:"related_projects_data"`
	PlatformMetadata    datatypes.JSON `json:"platform_metadata"`

	DepartmentIDs      *[]uint `json:"department_ids"`
	RelatedDepartments *[]uint `json:"related_departments"`
}

// EffectiveDepartmentIDs resolves the two accepted link-list field names.
// Nil means neither was supplied.
func (r *UpdateProjectRequest) EffectiveDepartmentIDs() *[]uint {
	if r.DepartmentIDs != nil {
		return r.DepartmentIDs
	}
	return r.RelatedDepartments
}

// ProjectSummary is the reduced projection embedded in department detail
// responses.
type ProjectSummary struct {
	ID      uint           `json:"id"`
	Title   string         `json:"title"`
	Slug    string         `json:"slug"`
	Summary string         `json:"summary"`
	Status  string         `json:"status"`
	Tags    datatypes.JSON `json:"tags"`
}

// ProjectResponse is the list-view project representation. The heavy JSON
// content fields are included here as well; the list and detail views differ
// only in how related departments are projected.
type ProjectResponse struct {
	ID      uint           `json:"id"`
	Title   string         `json:"title"`
	Slug    string         `json:"slug"`
	Summary string         `json:"summary"`
	Status  string         `json:"status"`
	Tags    datatypes.JSON `json:"tags"`
	Images  datatypes.JSON `json:"images"`
	Blocks  datatypes.JSON `json:"blocks"`

	Tagline             string         `json:"tagline"`
	PrimaryCTA          datatypes.JSON `json:"primary_cta"`
	SecondaryCTA        datatypes.JSON `json:"secondary_cta"`
	About               datatypes.JSON `json:"about"`
	Features            datatypes.JSON `json:"features"`
	Previews            datatypes.JSON `json:"previews"`
	TechnicalSpecs      datatypes.JSON `json:"technical_specs"`
	UseCases            datatypes.JSON `json:"use_cases"`
	Team                datatypes.JSON `json:"team"`
	Roadmap             datatypes.JSON `json:"roadmap"`
	RelatedProjectsData datatypes.JSON `json:"related_projects_data"`
	PlatformMetadata    datatypes.JSON `json:"platform_metadata"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RelatedDepartments []DepartmentSummary `json:"related_departments"`
}

// ProjectDetailResponse is the detail-view representation: the same project
// fields with the full department records embedded instead of summaries.
type ProjectDetailResponse struct {
	ID      uint           `json:"id"`
	Title   string         `json:"title"`
	Slug    string         `json:"slug"`
	Summary string         `json:"summary"`
	Status  string         `json:"status"`
	Tags    datatypes.JSON `json:"tags"`
	Images  datatypes.JSON `json:"images"`
	Blocks  datatypes.JSON `json:"blocks"`

	Tagline             string         `json:"tagline"`
	PrimaryCTA          datatypes.JSON `json:"primary_cta"`
	SecondaryCTA        datatypes.JSON `json:"secondary_cta"`
	About               datatypes.JSON `json:"about"`
	Features            datatypes.JSON `json:"features"`
	Previews            datatypes.JSON `json:"previews"`
	TechnicalSpecs      datatypes.JSON `json:"technical_specs"`
	UseCases            datatypes.JSON `json:"use_cases"`
	Team                datatypes.JSON `json:"team"`
	Roadmap             datatypes.JSON `json:"roadmap"`
	RelatedProjectsData datatypes.JSON `json:"related_projects_data"`
	PlatformMetadata    datatypes.JSON `json:"platform_metadata"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RelatedDepartments []DepartmentData `json:"related_departments"`
}
