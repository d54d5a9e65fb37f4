package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Rakifeller/idea-approval/internal/repository"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/hibiken/asynq"
)

// Notifier is the slice of the webhook layer the worker needs. The service
// package provides the implementation; declaring it here keeps queue from
// importing service, which imports queue.
type Notifier interface {
	NotifyPoster(ctx context.Context, n transfer.PosterNotification) error
	NotifyGeneration(ctx context.Context, ideaID string) error
}

type Queue struct {
	sp repository.ScheduledPostRepository
	n  Notifier
}

func NewQueue(sp repository.ScheduledPostRepository, n Notifier) *Queue {
	return &Queue{sp: sp, n: n}
}

// HandleNotifyPosterTask pushes a scheduled post to the external poster
// webhook. Delivery is best effort: the poller picks the post up on its own
// timer either way, so failures are logged and the task is not retried.
func (q *Queue) HandleNotifyPosterTask(ctx context.Context, task *asynq.Task) error {
	var payload PosterNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	post, err := q.sp.GetByID(ctx, payload.PostID)
	if err != nil {
		log.Printf("Error loading scheduled post %s for poster notify: %v", payload.PostID, err)
		return nil
	}
	if post == nil {
		log.Printf("Scheduled post %s vanished before poster notify", payload.PostID)
		return nil
	}

	notification := transfer.PosterNotification{
		Trigger:         payload.Trigger,
		ScheduledPostID: post.ID,
		ContentID:       post.ContentID,
		CharacterID:     post.CharacterID,
		PostType:        post.PostType,
		Caption:         post.Caption,
		Hashtags:        post.Hashtags,
		MediaURL:        post.MediaURL,
		MediaType:       post.MediaType,
		Timestamp:       time.Now().UTC(),
	}

	if err := q.n.NotifyPoster(ctx, notification); err != nil {
		log.Printf("Error notifying poster for post %s: %v", post.ID, err)
	}
	return nil
}

// HandleNotifyGenerationTask tells the AI pipeline an idea was approved.
func (q *Queue) HandleNotifyGenerationTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerationNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	if err := q.n.NotifyGeneration(ctx, payload.IdeaID); err != nil {
		log.Printf("Error notifying generation pipeline for idea %s: %v", payload.IdeaID, err)
	}
	return nil
}
