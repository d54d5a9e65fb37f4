package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Rakifeller/idea-approval/internal/models"
)

type mockScheduledPostRepo struct {
	createFn    func(ctx context.Context, post *models.ScheduledPost) error
	getByIDFn   func(ctx context.Context, id string) (*models.ScheduledPost, error)
	listFn      func(ctx context.Context) ([]*models.ScheduledPost, error)
	listDueFn   func(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
	activeIDsFn func(ctx context.Context) ([]string, error)
	removeFn    func(ctx context.Context, id string) (bool, error)
}

func (m *mockScheduledPostRepo) Create(ctx context.Context, post *models.ScheduledPost) error {
	return m.createFn(ctx, post)
}

func (m *mockScheduledPostRepo) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockScheduledPostRepo) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	return m.listFn(ctx)
}

func (m *mockScheduledPostRepo) ListDue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	return m.listDueFn(ctx, now)
}

func (m *mockScheduledPostRepo) ActiveContentIDs(ctx context.Context) ([]string, error) {
	return m.activeIDsFn(ctx)
}

func (m *mockScheduledPostRepo) RemoveScheduled(ctx context.Context, id string) (bool, error) {
	return m.removeFn(ctx, id)
}

type mockContentRepo struct {
	getByIDFn         func(ctx context.Context, id string) (*models.ApprovedContent, error)
	listExcludingFn   func(ctx context.Context, excludedIDs []string) ([]*models.ApprovedContent, error)
	listByCharacterFn func(ctx context.Context, characterID string) ([]*models.ApprovedContent, error)
	countFn           func(ctx context.Context, characterID string) (int, error)
}

func (m *mockContentRepo) GetByID(ctx context.Context, id string) (*models.ApprovedContent, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockContentRepo) ListExcluding(ctx context.Context, excludedIDs []string) ([]*models.ApprovedContent, error) {
	return m.listExcludingFn(ctx, excludedIDs)
}

func (m *mockContentRepo) ListByCharacter(ctx context.Context, characterID string) ([]*models.ApprovedContent, error) {
	return m.listByCharacterFn(ctx, characterID)
}

func (m *mockContentRepo) CountByCharacter(ctx context.Context, characterID string) (int, error) {
	return m.countFn(ctx, characterID)
}

type mockIdeaRepo struct {
	getByIDFn      func(ctx context.Context, id string) (*models.ContentIdea, error)
	listFn         func(ctx context.Context, status string) ([]*models.ContentIdea, error)
	approveFn      func(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error)
	rejectFn       func(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error)
	assignFn       func(ctx context.Context, id, characterID string) (*models.ContentIdea, error)
	countPendingFn func(ctx context.Context, characterID string) (int, error)
	countByTypeFn  func(ctx context.Context, characterID, contentType string) (int, error)
}

func (m *mockIdeaRepo) GetByID(ctx context.Context, id string) (*models.ContentIdea, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockIdeaRepo) List(ctx context.Context, status string) ([]*models.ContentIdea, error) {
	return m.listFn(ctx, status)
}

func (m *mockIdeaRepo) Approve(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	return m.approveFn(ctx, id, at)
}

func (m *mockIdeaRepo) Reject(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	return m.rejectFn(ctx, id, at)
}

func (m *mockIdeaRepo) AssignCharacter(ctx context.Context, id, characterID string) (*models.ContentIdea, error) {
	return m.assignFn(ctx, id, characterID)
}

func (m *mockIdeaRepo) CountPendingByCharacter(ctx context.Context, characterID string) (int, error) {
	return m.countPendingFn(ctx, characterID)
}

func (m *mockIdeaRepo) CountApprovedByContentType(ctx context.Context, characterID, contentType string) (int, error) {
	return m.countByTypeFn(ctx, characterID, contentType)
}

// fakeDispatcher records dispatches; set fail to simulate a dead queue.
type fakeDispatcher struct {
	mu          sync.Mutex
	fail        bool
	posterCalls []string
	triggers    []string
	genCalls    []string
}

func (d *fakeDispatcher) DispatchPosterNotify(postID, trigger string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.posterCalls = append(d.posterCalls, postID)
	d.triggers = append(d.triggers, trigger)
	return nil
}

func (d *fakeDispatcher) DispatchGenerationNotify(ideaID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.genCalls = append(d.genCalls, ideaID)
	return nil
}
