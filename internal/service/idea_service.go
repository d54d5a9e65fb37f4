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
)

type IdeaService interface {
	List(ctx context.Context, status string) ([]*models.ContentIdea, error)
	Approve(ctx context.Context, ideaID string) (*models.ContentIdea, error)
	Reject(ctx context.Context, ideaID string) (*models.ContentIdea, error)
	AssignCharacter(ctx context.Context, ideaID, characterID string) (*models.ContentIdea, error)
}

type ideaService struct {
	ir repository.IdeaRepository
	d  queue.Dispatcher
}

func NewIdeaService(ir repository.IdeaRepository, d queue.Dispatcher) IdeaService {
	return &ideaService{ir: ir, d: d}
}

func (s *ideaService) List(ctx context.Context, status string) ([]*models.ContentIdea, error) {
	ideas, err := s.ir.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error listing ideas: %w", err)
	}
	return ideas, nil
}

// Approve finalizes a pending idea and nudges the AI pipeline to generate
// content for it. The nudge is detached: once the status flip committed, the
// approval stands whether or not the webhook was reachable.
func (s *ideaService) Approve(ctx context.Context, ideaID string) (*models.ContentIdea, error) {
	if ideaID == "" {
		return nil, apperr.Validation("ideaId")
	}

	idea, err := s.ir.Approve(ctx, ideaID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error approving idea: %w", err)
	}
	if idea == nil {
		return nil, s.transitionRefused(ctx, "approve", ideaID)
	}

	if err := s.d.DispatchGenerationNotify(idea.ID); err != nil {
		slog.Error("failed to dispatch generation notification", "idea_id", idea.ID, "error", err)
	}

	return idea, nil
}

func (s *ideaService) Reject(ctx context.Context, ideaID string) (*models.ContentIdea, error) {
	if ideaID == "" {
		return nil, apperr.Validation("ideaId")
	}

	idea, err := s.ir.Reject(ctx, ideaID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error rejecting idea: %w", err)
	}
	if idea == nil {
		return nil, s.transitionRefused(ctx, "reject", ideaID)
	}

	return idea, nil
}

func (s *ideaService) AssignCharacter(ctx context.Context, ideaID, characterID string) (*models.ContentIdea, error) {
	if ideaID == "" {
		return nil, apperr.Validation("ideaId")
	}
	if characterID == "" {
		return nil, apperr.Validation("characterId")
	}

	idea, err := s.ir.AssignCharacter(ctx, ideaID, characterID)
	if err != nil {
		return nil, fmt.Errorf("error assigning character: %w", err)
	}
	if idea == nil {
		return nil, s.transitionRefused(ctx, "reassign", ideaID)
	}

	return idea, nil
}

// transitionRefused tells a missing idea apart from one that already left the
// pending state.
func (s *ideaService) transitionRefused(ctx context.Context, op, ideaID string) error {
	current, err := s.ir.GetByID(ctx, ideaID)
	if err != nil {
		return fmt.Errorf("error loading idea: %w", err)
	}
	if current == nil {
		return apperr.NotFound("idea", ideaID)
	}
	return apperr.InvalidState(op, "idea", ideaID, current.Status)
}
