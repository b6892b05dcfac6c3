package domain

import (
	"gorm.io/datatypes"
)

// Canonical project status values. Status is stored as free text and is not
// validated on write: any caller-supplied string is accepted and only later
// interpreted by the stats bucketing in the service layer. StatusLive is
// declared by legacy content but belongs to no stats bucket.
const (
	StatusPlanned    = "planned"
	StatusDraft      = "draft"
	StatusActive     = "active"
	StatusInProgress = "in-progress"
	StatusBuilding   = "building"
	StatusCompleted  = "completed"
	StatusLive       = "live"
)

// Project represents a project page with rich nested content. All JSON-typed
// fields are consumer-defined documents stored pass-through; they default to
// an empty array or object at creation so no field is ever null.
type Project struct {
	BaseModel
	Title   string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug    string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_projects_slug" json:"slug"`
	Summary string         `gorm:"type:text" json:"summary"`
	Status  string         `gorm:"type:varchar(50);not null;default:'planned';index:idx_projects_status" json:"status"`
	Tags    datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Images  datatypes.JSON `gorm:"type:jsonb" json:"images"`
	Blocks  datatypes.JSON `gorm:"type:jsonb" json:"blocks"`

	// Rich content fields rendered by the public site detail page.
	Tagline             string         `gorm:"type:text" json:"tagline"`
	PrimaryCTA          datatypes.JSON `gorm:"type:jsonb" json:"primary_cta"`
	SecondaryCTA        datatypes.JSON `gorm:"type:jsonb" json:"secondary_cta"`
	About               datatypes.JSON `gorm:"type:jsonb" json:"about"`
	Features            datatypes.JSON `gorm:"type:jsonb" json:"features"`
	Previews            datatypes.JSON `gorm:"type:jsonb" json:"previews"`
	TechnicalSpecs      datatypes.JSON `gorm:"type:jsonb" json:"technical_specs"`
	UseCases            datatypes.JSON `gorm:"type:jsonb" json:"use_cases"`
	Team                datatypes.JSON `gorm:"type:jsonb" json:"team"`
	Roadmap             datatypes.JSON `gorm:"type:jsonb" json:"roadmap"`
	RelatedProjectsData datatypes.JSON `gorm:"type:jsonb" json:"related_projects_data"`
	PlatformMetadata    datatypes.JSON `gorm:"type:jsonb" json:"platform_metadata"`

	Links []ProjectDepartment `gorm:"foreignKey:ProjectID" json:"links,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
