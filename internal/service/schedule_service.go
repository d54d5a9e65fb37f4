package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rakifeller/idea-approval/internal/apperr"
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/queue"
	"github.com/Rakifeller/idea-approval/internal/repository"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ScheduleService interface {
	Create(ctx context.Context, pc *transfer.SchedulePostCreation) (*models.ScheduledPost, bool, error)
	List(ctx context.Context) ([]*models.ScheduledPost, error)
	Remove(ctx context.Context, id string) error
}

type scheduleService struct {
	sp repository.ScheduledPostRepository
	cr repository.ContentRepository
	d  queue.Dispatcher
	// now is swapped out in tests
	now func() time.Time
}

func NewScheduleService(
	sp repository.ScheduledPostRepository,
	cr repository.ContentRepository,
	d queue.Dispatcher) ScheduleService {
	return &scheduleService{
		sp:  sp,
		cr:  cr,
		d:   d,
		now: time.Now,
	}
}

var validPostTypes = map[string]struct{}{
	models.PostTypeFeed:  {},
	models.PostTypeStory: {},
	models.PostTypeReel:  {},
}

// Create turns a ready content item into a scheduled post. With post_now set
// the record is born in "posting" with scheduled_time = now and the external
// poster is nudged over its webhook; otherwise it waits in "scheduled" for
// the poller. The nudge is fire and forget: a record that was durably written
// is reported as a success no matter what the webhook did.
func (s *scheduleService) Create(ctx context.Context, pc *transfer.SchedulePostCreation) (*models.ScheduledPost, bool, error) {
	if pc.ContentID == "" {
		return nil, false, apperr.Validation("content_id")
	}
	if pc.CharacterID == "" {
		return nil, false, apperr.Validation("character_id")
	}
	if pc.PostType == "" {
		return nil, false, apperr.Validation("post_type")
	}
	if _, ok := validPostTypes[pc.PostType]; !ok {
		return nil, false, apperr.Validation("post_type")
	}
	if pc.MediaURL == "" {
		return nil, false, apperr.Validation("media_url")
	}

	var scheduledTime time.Time
	status := models.PostStatusScheduled

	if pc.PostNow {
		scheduledTime = s.now().UTC()
		status = models.PostStatusPosting
	} else {
		if pc.ScheduledTime == "" {
			return nil, false, apperr.Validation("scheduled_time")
		}
		var err error
		scheduledTime, err = time.Parse(time.RFC3339, pc.ScheduledTime)
		if err != nil {
			slog.Info(err.Error())
			return nil, false, apperr.Validation("scheduled_time")
		}
	}

	content, err := s.cr.GetByID(ctx, pc.ContentID)
	if err != nil {
		return nil, false, fmt.Errorf("error loading content: %w", err)
	}
	if content == nil {
		return nil, false, apperr.NotFound("content", pc.ContentID)
	}

	caption := pc.Caption
	if caption == "" {
		caption = content.Caption
	}
	hashtags := pc.Hashtags
	if len(hashtags) == 0 {
		hashtags = content.Hashtags
	}
	mediaType := pc.MediaType
	if mediaType == "" {
		mediaType = content.ContentType
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, false, fmt.Errorf("error generating post id: %w", err)
	}

	post := models.ScheduledPost{
		ID:            id,
		ContentID:     pc.ContentID,
		CharacterID:   pc.CharacterID,
		PostType:      pc.PostType,
		ScheduledTime: scheduledTime,
		Caption:       caption,
		Hashtags:      hashtags,
		MediaURL:      pc.MediaURL,
		MediaType:     mediaType,
		Status:        status,
	}

	if err := s.sp.Create(ctx, &post); err != nil {
		if err == repository.ErrContentAlreadyScheduled {
			return nil, false, apperr.InvalidState("schedule", "content", pc.ContentID, "already claimed")
		}
		return nil, false, fmt.Errorf("error creating scheduled post: %w", err)
	}

	if pc.PostNow {
		if err := s.d.DispatchPosterNotify(post.ID, transfer.TriggerPostNow); err != nil {
			slog.Error("failed to dispatch poster notification", "post_id", post.ID, "error", err)
		}
	}

	return &post, pc.PostNow, nil
}

func (s *scheduleService) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	posts, err := s.sp.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing scheduled posts: %w", err)
	}
	return posts, nil
}

// Remove cancels a post that the external poster has not claimed yet.
func (s *scheduleService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return apperr.Validation("id")
	}

	post, err := s.sp.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error loading scheduled post: %w", err)
	}
	if post == nil {
		return apperr.NotFound("scheduled post", id)
	}
	if post.Status != models.PostStatusScheduled {
		return apperr.InvalidState("delete", "scheduled post", id, post.Status)
	}

	removed, err := s.sp.RemoveScheduled(ctx, id)
	if err != nil {
		return fmt.Errorf("error removing scheduled post: %w", err)
	}
	if !removed {
		// Lost a race with the poster claiming the post.
		current, err := s.sp.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error reloading scheduled post: %w", err)
		}
		if current == nil {
			return apperr.NotFound("scheduled post", id)
		}
		return apperr.InvalidState("delete", "scheduled post", id, current.Status)
	}

	return nil
}
