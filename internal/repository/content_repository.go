package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/lib/pq"
)

type ContentRepository interface {
	GetByID(ctx context.Context, id string) (*models.ApprovedContent, error)
	ListExcluding(ctx context.Context, excludedIDs []string) ([]*models.ApprovedContent, error)
	ListByCharacter(ctx context.Context, characterID string) ([]*models.ApprovedContent, error)
	CountByCharacter(ctx context.Context, characterID string) (int, error)
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, idea_id, character_id, image_url, video_url, caption, hashtags, status, content_type, created_at`

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ApprovedContent, error) {
	query := `SELECT ` + contentColumns + ` FROM approved_content WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var c models.ApprovedContent
	err := row.Scan(&c.ID, &c.IdeaID, &c.CharacterID, &c.ImageURL, &c.VideoURL,
		&c.Caption, pq.Array(&c.Hashtags), &c.Status, &c.ContentType, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &c, nil
}

// ListExcluding returns approved content newest first, leaving out the given
// ids. An empty exclusion set applies no filter at all.
func (r *contentRepository) ListExcluding(ctx context.Context, excludedIDs []string) ([]*models.ApprovedContent, error) {
	query := `SELECT ` + contentColumns + ` FROM approved_content ORDER BY created_at DESC`
	args := []any{}

	if len(excludedIDs) > 0 {
		query = `SELECT ` + contentColumns + ` FROM approved_content WHERE id <> ALL($1) ORDER BY created_at DESC`
		args = append(args, pq.Array(excludedIDs))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanContentRows(rows)
}

func (r *contentRepository) ListByCharacter(ctx context.Context, characterID string) ([]*models.ApprovedContent, error) {
	// content_type lives on the originating idea; older rows may predate the
	// column on approved_content, so the idea wins when present.
	query := `
		SELECT ac.id, ac.idea_id, ac.character_id, ac.image_url, ac.video_url, ac.caption, ac.hashtags, ac.status,
			COALESCE(ci.content_type, ac.content_type), ac.created_at
		FROM approved_content ac
		LEFT JOIN content_ideas ci ON ci.id = ac.idea_id
		WHERE ac.character_id = $1
		ORDER BY ac.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, characterID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanContentRows(rows)
}

func (r *contentRepository) CountByCharacter(ctx context.Context, characterID string) (int, error) {
	query := `SELECT COUNT(*) FROM approved_content WHERE character_id = $1`

	var count int
	err := r.db.QueryRowContext(ctx, query, characterID).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func scanContentRows(rows *sql.Rows) ([]*models.ApprovedContent, error) {
	var content []*models.ApprovedContent
	for rows.Next() {
		var c models.ApprovedContent
		err := rows.Scan(&c.ID, &c.IdeaID, &c.CharacterID, &c.ImageURL, &c.VideoURL,
			&c.Caption, pq.Array(&c.Hashtags), &c.Status, &c.ContentType, &c.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		content = append(content, &c)
	}
	return content, rows.Err()
}
