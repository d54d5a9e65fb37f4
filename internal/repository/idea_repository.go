package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Rakifeller/idea-approval/internal/models"
)

type IdeaRepository interface {
	GetByID(ctx context.Context, id string) (*models.ContentIdea, error)
	List(ctx context.Context, status string) ([]*models.ContentIdea, error)
	Approve(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error)
	Reject(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error)
	AssignCharacter(ctx context.Context, id, characterID string) (*models.ContentIdea, error)
	CountPendingByCharacter(ctx context.Context, characterID string) (int, error)
	CountApprovedByContentType(ctx context.Context, characterID, contentType string) (int, error)
}

type ideaRepository struct {
	db *sql.DB
}

func NewIdeaRepository(db *sql.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

const ideaColumns = `id, character_id, source_id, source_post_url, idea_text, inspiration_summary, original_post_caption, status, content_type, source_type, created_at, approved_at, rejected_at`

func (r *ideaRepository) GetByID(ctx context.Context, id string) (*models.ContentIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM content_ideas WHERE id = $1`
	idea, err := scanIdea(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepository) List(ctx context.Context, status string) ([]*models.ContentIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM content_ideas ORDER BY created_at DESC`
	args := []any{}

	if status != "" {
		query = `SELECT ` + ideaColumns + ` FROM content_ideas WHERE status = $1 ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var ideas []*models.ContentIdea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// Approve flips a pending idea to approved. Returns nil when no pending row
// matched, so the caller can tell a missing idea from an already-decided one.
func (r *ideaRepository) Approve(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	query := `
		UPDATE content_ideas SET status = $2, approved_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + ideaColumns
	return r.transition(ctx, query, id, models.IdeaStatusApproved, at)
}

func (r *ideaRepository) Reject(ctx context.Context, id string, at time.Time) (*models.ContentIdea, error) {
	query := `
		UPDATE content_ideas SET status = $2, rejected_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + ideaColumns
	return r.transition(ctx, query, id, models.IdeaStatusRejected, at)
}

func (r *ideaRepository) transition(ctx context.Context, query, id, status string, at time.Time) (*models.ContentIdea, error) {
	idea, err := scanIdea(r.db.QueryRowContext(ctx, query, id, status, at, models.IdeaStatusPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepository) AssignCharacter(ctx context.Context, id, characterID string) (*models.ContentIdea, error) {
	query := `
		UPDATE content_ideas SET character_id = $2
		WHERE id = $1 AND status = $3
		RETURNING ` + ideaColumns
	idea, err := scanIdea(r.db.QueryRowContext(ctx, query, id, characterID, models.IdeaStatusPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepository) CountPendingByCharacter(ctx context.Context, characterID string) (int, error) {
	query := `SELECT COUNT(*) FROM content_ideas WHERE character_id = $1 AND status = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, characterID, models.IdeaStatusPending).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *ideaRepository) CountApprovedByContentType(ctx context.Context, characterID, contentType string) (int, error) {
	query := `SELECT COUNT(*) FROM content_ideas WHERE character_id = $1 AND status = $2 AND content_type = $3`

	var count int
	err := r.db.QueryRowContext(ctx, query, characterID, models.IdeaStatusApproved, contentType).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*models.ContentIdea, error) {
	var idea models.ContentIdea
	err := row.Scan(&idea.ID, &idea.CharacterID, &idea.SourceID, &idea.SourcePostURL,
		&idea.IdeaText, &idea.InspirationSummary, &idea.OriginalPostCaption,
		&idea.Status, &idea.ContentType, &idea.SourceType,
		&idea.CreatedAt, &idea.ApprovedAt, &idea.RejectedAt)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}
