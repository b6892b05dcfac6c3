package metrics

// IncrementDepartmentCreated increments department creation counter
func (m *Metrics) IncrementDepartmentCreated() {
	m.safeExecute("IncrementDepartmentCreated", func() {
		m.DepartmentCreatedTotal.Inc()
	})
}

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementMediaUploaded increments media upload counter
func (m *Metrics) IncrementMediaUploaded() {
	m.safeExecute("IncrementMediaUploaded", func() {
		m.MediaUploadedTotal.Inc()
	})
}

// AddOrphanedLinksSwept adds to the orphaned link sweep counter
func (m *Metrics) AddOrphanedLinksSwept(count int64) {
	m.safeExecute("AddOrphanedLinksSwept", func() {
		m.OrphanedLinksSweptTotal.Add(float64(count))
	})
}

// SetDepartmentsTotal sets total departments gauge
func (m *Metrics) SetDepartmentsTotal(count int64) {
	m.safeExecute("SetDepartmentsTotal", func() {
		m.DepartmentsTotal.Set(float64(count))
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}
