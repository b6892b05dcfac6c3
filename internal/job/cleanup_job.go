package job

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"content-platform-api/internal/metrics"
	"content-platform-api/internal/repository"
)

// CleanupJob removes orphaned project-department join rows. Deletes performed
// out-of-band (direct SQL, partial failures) can leave join rows pointing at
// rows that no longer exist; the read path already skips them, this job purges
// them.
type CleanupJob struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Run executes one sweep. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	removed, err := j.projectRepo.DeleteOrphanedLinks(ctx)
	if err != nil {
		j.logger.Error("Failed to remove orphaned project-department links",
			zap.Error(err),
		)
		return
	}

	if j.metrics != nil {
		j.metrics.AddOrphanedLinksSwept(removed)
	}

	if removed > 0 {
		j.logger.Info("Removed orphaned project-department links",
			zap.Int64("count", removed),
		)
	} else {
		j.logger.Debug("No orphaned project-department links found")
	}
}

// Schedule registers the job on the given cron runner with the configured
// schedule spec (e.g. "@hourly").
func (j *CleanupJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddJob(spec, j)
}
