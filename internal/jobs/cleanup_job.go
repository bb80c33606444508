package job

import (
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/service"
)

const uploadMaxAge = 24 * time.Hour

// CleanupJob removes uploaded media once generation no longer needs
// the files. Uploads only feed the media analysis step, so anything
// older than a day is garbage.
type CleanupJob struct {
	media service.MediaService
}

func NewCleanupJob(media service.MediaService) *CleanupJob {
	return &CleanupJob{media: media}
}

func (j *CleanupJob) Run() {
	if err := j.media.CleanupOldFiles(uploadMaxAge); err != nil {
		slog.Info(err.Error())
	}
}
