package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/lib/pq"
)

// ErrContentAlreadyScheduled is returned when an insert trips the partial
// unique index on (content_id) for live statuses.
var ErrContentAlreadyScheduled = errors.New("content already has an active scheduled post")

type ScheduledPostRepository interface {
	Create(ctx context.Context, post *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	List(ctx context.Context) ([]*models.ScheduledPost, error)
	ListDue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
	ActiveContentIDs(ctx context.Context) ([]string, error)
	RemoveScheduled(ctx context.Context, id string) (bool, error)
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

const uniqueViolation = "23505"

func (r *scheduledPostRepository) Create(ctx context.Context, post *models.ScheduledPost) error {
	query := `
		INSERT INTO scheduled_posts (id, content_id, character_id, post_type, scheduled_time, caption, hashtags, media_url, media_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.ContentID, post.CharacterID, post.PostType, post.ScheduledTime,
		post.Caption, pq.Array(post.Hashtags), post.MediaURL, post.MediaType, post.Status,
	).Scan(&post.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrContentAlreadyScheduled
		}
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *scheduledPostRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	query := `
		SELECT id, content_id, character_id, post_type, scheduled_time, caption, hashtags, media_url, media_type, status, instagram_post_url, error_message, posted_at, created_at
		FROM scheduled_posts WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.ScheduledPost
	err := row.Scan(&post.ID, &post.ContentID, &post.CharacterID, &post.PostType, &post.ScheduledTime,
		&post.Caption, pq.Array(&post.Hashtags), &post.MediaURL, &post.MediaType, &post.Status,
		&post.InstagramPostURL, &post.ErrorMessage, &post.PostedAt, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *scheduledPostRepository) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	query := `
		SELECT p.id, p.content_id, p.character_id, p.post_type, p.scheduled_time, p.caption, p.hashtags, p.media_url, p.media_type, p.status, p.instagram_post_url, p.error_message, p.posted_at, p.created_at,
			c.id, c.name, c.niche
		FROM scheduled_posts p
		JOIN influencer_characters c ON c.id = p.character_id
		ORDER BY p.scheduled_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		var post models.ScheduledPost
		var ref models.CharacterRef
		err := rows.Scan(&post.ID, &post.ContentID, &post.CharacterID, &post.PostType, &post.ScheduledTime,
			&post.Caption, pq.Array(&post.Hashtags), &post.MediaURL, &post.MediaType, &post.Status,
			&post.InstagramPostURL, &post.ErrorMessage, &post.PostedAt, &post.CreatedAt,
			&ref.ID, &ref.Name, &ref.Niche)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		post.Character = &ref
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *scheduledPostRepository) ListDue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, content_id, character_id, post_type, scheduled_time, caption, hashtags, media_url, media_type, status, instagram_post_url, error_message, posted_at, created_at
		FROM scheduled_posts
		WHERE status = $1 AND scheduled_time <= $2
		ORDER BY scheduled_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, models.PostStatusScheduled, now)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		var post models.ScheduledPost
		err := rows.Scan(&post.ID, &post.ContentID, &post.CharacterID, &post.PostType, &post.ScheduledTime,
			&post.Caption, pq.Array(&post.Hashtags), &post.MediaURL, &post.MediaType, &post.Status,
			&post.InstagramPostURL, &post.ErrorMessage, &post.PostedAt, &post.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// ActiveContentIDs returns the content ids claimed by posts whose status
// still counts as live (scheduled, posting, posted).
func (r *scheduledPostRepository) ActiveContentIDs(ctx context.Context) ([]string, error) {
	query := `SELECT content_id FROM scheduled_posts WHERE status = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(models.ActivePostStatuses))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RemoveScheduled deletes the post only while its status is still
// "scheduled". Returns false when no row matched the guard.
func (r *scheduledPostRepository) RemoveScheduled(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM scheduled_posts WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, models.PostStatusScheduled)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
