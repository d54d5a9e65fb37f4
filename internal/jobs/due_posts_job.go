package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rakifeller/idea-approval/internal/queue"
	"github.com/Rakifeller/idea-approval/internal/repository"
	"github.com/Rakifeller/idea-approval/internal/transfer"
)

// DuePostsJob re-notifies the external poster about scheduled posts whose
// time has come. It never touches post status: picking up a post and flipping
// it to posting/posted/failed belongs to the poster alone. The job just
// shortens the latency when a one-shot notification got lost.
type DuePostsJob struct {
	sp repository.ScheduledPostRepository
	d  queue.Dispatcher
}

func NewDuePostsJob(sp repository.ScheduledPostRepository, d queue.Dispatcher) *DuePostsJob {
	return &DuePostsJob{sp: sp, d: d}
}

func (j *DuePostsJob) NudgeDuePosts() {
	ctx := context.Background()

	posts, err := j.sp.ListDue(ctx, time.Now().UTC())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, post := range posts {
		if err := j.d.DispatchPosterNotify(post.ID, transfer.TriggerScheduledDue); err != nil {
			slog.Error("failed to dispatch due-post nudge", "post_id", post.ID, "error", err)
		}
	}
}
