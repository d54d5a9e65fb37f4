package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/repository"
)

// memPostRepo is a tiny in-memory stand-in for the scheduled_posts table,
// including the partial-unique guard on live content ids.
type memPostRepo struct {
	posts []*models.ScheduledPost
}

func (m *memPostRepo) Create(ctx context.Context, post *models.ScheduledPost) error {
	for _, p := range m.posts {
		if p.ContentID == post.ContentID &&
			(p.Status == models.PostStatusScheduled || p.Status == models.PostStatusPosting) {
			return repository.ErrContentAlreadyScheduled
		}
	}
	post.CreatedAt = time.Now()
	m.posts = append(m.posts, post)
	return nil
}

func (m *memPostRepo) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPostRepo) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	return m.posts, nil
}

func (m *memPostRepo) ListDue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	var due []*models.ScheduledPost
	for _, p := range m.posts {
		if p.Status == models.PostStatusScheduled && !p.ScheduledTime.After(now) {
			due = append(due, p)
		}
	}
	return due, nil
}

func (m *memPostRepo) ActiveContentIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, p := range m.posts {
		switch p.Status {
		case models.PostStatusScheduled, models.PostStatusPosting, models.PostStatusPosted:
			ids = append(ids, p.ContentID)
		}
	}
	return ids, nil
}

func (m *memPostRepo) RemoveScheduled(ctx context.Context, id string) (bool, error) {
	for i, p := range m.posts {
		if p.ID == id && p.Status == models.PostStatusScheduled {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memContentRepo struct {
	content []*models.ApprovedContent
}

func (m *memContentRepo) GetByID(ctx context.Context, id string) (*models.ApprovedContent, error) {
	for _, c := range m.content {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memContentRepo) ListExcluding(ctx context.Context, excludedIDs []string) ([]*models.ApprovedContent, error) {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	var out []*models.ApprovedContent
	for _, c := range m.content {
		if _, ok := excluded[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContentRepo) ListByCharacter(ctx context.Context, characterID string) ([]*models.ApprovedContent, error) {
	var out []*models.ApprovedContent
	for _, c := range m.content {
		if c.CharacterID == characterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContentRepo) CountByCharacter(ctx context.Context, characterID string) (int, error) {
	items, _ := m.ListByCharacter(ctx, characterID)
	return len(items), nil
}

type memIdeaRepo struct {
	ideas []*models.ContentIdea
}

func (m *memIdeaRepo) GetByID(ctx context.Context, id string) (*models.ContentIdea, error) {
	for _, i := range m.ideas {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (m *memIdeaRepo) List(ctx context.Context, status string) ([]*models.ContentIdea, error) {
	var out []*models.ContentIdea
	for _, i := range m.ideas {
		if status == "" || i.Status == status {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memIdeaRepo) Approve(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	return m.transition(id, models.IdeaStatusApproved, at)
}

func (m *memIdeaRepo) Reject(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	return m.transition(id, models.IdeaStatusRejected, at)
}

func (m *memIdeaRepo) transition(id, status string, at time.Time) (*models.ContentIdea, error) {
	for _, i := range m.ideas {
		if i.ID == id && i.Status == models.IdeaStatusPending {
			i.Status = status
			if status == models.IdeaStatusApproved {
				i.ApprovedAt = &at
			} else {
				i.RejectedAt = &at
			}
			return i, nil
		}
	}
	return nil, nil
}

func (m *memIdeaRepo) AssignCharacter(ctx context.Context, id, characterID string) (*models.ContentIdea, error) {
	for _, i := range m.ideas {
		if i.ID == id && i.Status == models.IdeaStatusPending {
			i.CharacterID = characterID
			return i, nil
		}
	}
	return nil, nil
}

func (m *memIdeaRepo) CountPendingByCharacter(ctx context.Context, characterID string) (int, error) {
	count := 0
	for _, i := range m.ideas {
		if i.CharacterID == characterID && i.Status == models.IdeaStatusPending {
			count++
		}
	}
	return count, nil
}

func (m *memIdeaRepo) CountApprovedByContentType(ctx context.Context, characterID, contentType string) (int, error) {
	count := 0
	for _, i := range m.ideas {
		if i.CharacterID == characterID && i.Status == models.IdeaStatusApproved && i.ContentType == contentType {
			count++
		}
	}
	return count, nil
}

// fakeDispatcher records dispatched notifications; fail simulates a dead queue.
type fakeDispatcher struct {
	fail        bool
	posterCalls []string
	genCalls    []string
}

func (d *fakeDispatcher) DispatchPosterNotify(postID, trigger string) error {
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.posterCalls = append(d.posterCalls, postID)
	return nil
}

func (d *fakeDispatcher) DispatchGenerationNotify(ideaID string) error {
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.genCalls = append(d.genCalls, ideaID)
	return nil
}
