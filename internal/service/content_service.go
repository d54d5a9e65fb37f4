package service

import (
	"context"
	"fmt"

	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/repository"
)

type ContentService interface {
	ListReady(ctx context.Context) ([]*models.ApprovedContent, error)
}

type contentService struct {
	cr repository.ContentRepository
	sp repository.ScheduledPostRepository
}

func NewContentService(cr repository.ContentRepository, sp repository.ScheduledPostRepository) ContentService {
	return &contentService{cr: cr, sp: sp}
}

// ListReady returns approved content nothing is queued for yet. Content whose
// post is scheduled, posting or posted stays hidden; a failed post frees its
// content to be rescheduled.
func (s *contentService) ListReady(ctx context.Context) ([]*models.ApprovedContent, error) {
	claimed, err := s.sp.ActiveContentIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading claimed content ids: %w", err)
	}

	content, err := s.cr.ListExcluding(ctx, claimed)
	if err != nil {
		return nil, fmt.Errorf("error listing ready content: %w", err)
	}
	return content, nil
}
