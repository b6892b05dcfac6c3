package service

import (
	"encoding/json"

	"gorm.io/datatypes"

	"content-platform-api/internal/domain"
)

// ProjectStats is the read-only statistics bundle attached to department
// representations. It is computed per request from the statuses of the
// department's linked projects and never persisted.
type ProjectStats struct {
	TotalProjects     int
	CompletedProjects int
	Drafts            int
	ActiveProjects    int
}

// ComputeProjectStats buckets the given status values. Every status counts
// toward the total; a status outside the known buckets contributes to none of
// the other counts, so the bucket counts sum to at most the total.
func ComputeProjectStats(statuses []string) ProjectStats {
	stats := ProjectStats{TotalProjects: len(statuses)}
	for _, status := range statuses {
		switch status {
		case domain.StatusCompleted:
			stats.CompletedProjects++
		case domain.StatusPlanned, domain.StatusDraft:
			stats.Drafts++
		case domain.StatusActive, domain.StatusInProgress, domain.StatusBuilding:
			stats.ActiveProjects++
		}
	}
	return stats
}

// TeamSize returns the length of the department's team document when it is
// array-shaped, else 0. The document is consumer-defined JSON and may hold
// anything.
func TeamSize(team datatypes.JSON) int {
	if len(team) == 0 {
		return 0
	}
	var members []json.RawMessage
	if err := json.Unmarshal(team, &members); err != nil {
		return 0
	}
	return len(members)
}

// linkedProjects filters a department's join rows down to the ones whose
// project still exists. A join row may point at a deleted project (orphaned
// reference); such rows must not be counted under any status.
func linkedProjects(links []domain.ProjectDepartment) []*domain.Project {
	projects := make([]*domain.Project, 0, len(links))
	for _, link := range links {
		if link.Project == nil || link.Project.ID == 0 {
			continue
		}
		projects = append(projects, link.Project)
	}
	return projects
}

// linkedDepartments filters a project's join rows down to the ones whose
// department still exists.
func linkedDepartments(links []domain.ProjectDepartment) []*domain.Department {
	departments := make([]*domain.Department, 0, len(links))
	for _, link := range links {
		if link.Department == nil || link.Department.ID == 0 {
			continue
		}
		departments = append(departments, link.Department)
	}
	return departments
}

func projectStatuses(projects []*domain.Project) []string {
	statuses := make([]string, len(projects))
	for i, p := range projects {
		statuses[i] = p.Status
	}
	return statuses
}
