package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledPostRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)
	ctx := context.Background()

	post := &models.ScheduledPost{
		ID:            "sp1",
		ContentID:     "c1",
		CharacterID:   "x1",
		PostType:      models.PostTypeFeed,
		ScheduledTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		Caption:       "hi",
		Hashtags:      []string{"a", "b"},
		MediaURL:      "http://m/1.jpg",
		MediaType:     "photo",
		Status:        models.PostStatusScheduled,
	}

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO scheduled_posts").
		WithArgs("sp1", "c1", "x1", "feed", post.ScheduledTime, "hi", sqlmock.AnyArg(), "http://m/1.jpg", "photo", "scheduled").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	require.NoError(t, repo.Create(ctx, post))
	assert.Equal(t, createdAt, post.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledPostRepository_Create_ActiveDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)

	mock.ExpectQuery("INSERT INTO scheduled_posts").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "scheduled_posts_active_content"})

	post := &models.ScheduledPost{ID: "sp2", ContentID: "c1", Status: models.PostStatusScheduled}
	err = repo.Create(context.Background(), post)
	assert.ErrorIs(t, err, ErrContentAlreadyScheduled)
}

func TestScheduledPostRepository_GetByID_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM scheduled_posts WHERE id =").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	post, err := repo.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestScheduledPostRepository_List_JoinsCharacter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)

	cols := []string{
		"id", "content_id", "character_id", "post_type", "scheduled_time", "caption", "hashtags",
		"media_url", "media_type", "status", "instagram_post_url", "error_message", "posted_at", "created_at",
		"c_id", "c_name", "c_niche",
	}
	scheduled := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(cols).
		AddRow("sp1", "c1", "x1", "feed", scheduled, "hi", "{a,b}",
			"http://m/1.jpg", "photo", "scheduled", nil, nil, nil, time.Now(),
			"x1", "Lena", "fashion")

	mock.ExpectQuery("FROM scheduled_posts p (.+) ORDER BY p.scheduled_time ASC").WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Equal(t, []string{"a", "b"}, posts[0].Hashtags)
	require.NotNil(t, posts[0].Character)
	assert.Equal(t, "Lena", posts[0].Character.Name)
	assert.Equal(t, "fashion", posts[0].Character.Niche)
}

func TestScheduledPostRepository_ActiveContentIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)

	mock.ExpectQuery("SELECT content_id FROM scheduled_posts WHERE status = ANY").
		WillReturnRows(sqlmock.NewRows([]string{"content_id"}).AddRow("c1").AddRow("c3"))

	ids, err := repo.ActiveContentIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, ids)
}

func TestScheduledPostRepository_RemoveScheduled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewScheduledPostRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM scheduled_posts WHERE id =").
		WithArgs("sp1", models.PostStatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemoveScheduled(ctx, "sp1")
	require.NoError(t, err)
	assert.True(t, removed)

	// A post already claimed by the poster matches no row.
	mock.ExpectExec("DELETE FROM scheduled_posts WHERE id =").
		WithArgs("sp2", models.PostStatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err = repo.RemoveScheduled(ctx, "sp2")
	require.NoError(t, err)
	assert.False(t, removed)
}
