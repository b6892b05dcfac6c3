package domain

// ProjectDepartment is one many-to-many association instance between a
// Project and a Department. The pair is unique, but there are deliberately no
// DB-level foreign key constraints and no cascade: a row may outlive either
// endpoint (an orphaned reference) and readers must filter such rows out.
type ProjectDepartment struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID    uint `gorm:"not null;index:idx_project_departments_project_id;uniqueIndex:uq_project_departments_pair,priority:1" json:"project_id"`
	DepartmentID uint `gorm:"not null;index:idx_project_departments_department_id;uniqueIndex:uq_project_departments_pair,priority:2" json:"department_id"`

	Project    *Project    `gorm:"foreignKey:ProjectID;references:ID;constraint:-" json:"project,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:ID;constraint:-" json:"department,omitempty"`
}

// TableName specifies the table name for ProjectDepartment
func (ProjectDepartment) TableName() string {
	return "project_departments"
}
