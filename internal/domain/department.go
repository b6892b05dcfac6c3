package domain

import (
	"gorm.io/datatypes"
)

// Department represents a publishable department page on the marketing site.
// Blocks, Team and Resources are opaque JSON documents interpreted only by the
// presentation clients; this layer stores them verbatim and never validates
// their internal shape.
type Department struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_departments_slug" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	HeroImage   string         `gorm:"type:text" json:"hero_image"`
	Blocks      datatypes.JSON `gorm:"type:jsonb" json:"blocks"`
	Team        datatypes.JSON `gorm:"type:jsonb" json:"team"`
	Resources   datatypes.JSON `gorm:"type:jsonb" json:"resources"`
	Published   bool           `gorm:"not null;default:false;index:idx_departments_published" json:"published"`
	Links       []ProjectDepartment `gorm:"foreignKey:DepartmentID" json:"links,omitempty"`
}

// TableName specifies the table name for Department
func (Department) TableName() string {
	return "departments"
}
