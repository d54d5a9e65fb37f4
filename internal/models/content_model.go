package models

import "time"

type ApprovedContent struct {
	ID          string    `db:"id" json:"id"`
	IdeaID      string    `db:"idea_id" json:"idea_id"`
	CharacterID string    `db:"character_id" json:"character_id"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	VideoURL    string    `db:"video_url" json:"video_url"`
	Caption     string    `db:"caption" json:"caption"`
	Hashtags    []string  `db:"hashtags" json:"hashtags"`
	Status      string    `db:"status" json:"status"` // generating, ready
	ContentType string    `db:"content_type" json:"content_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MediaURL picks the asset matching the content type.
func (c *ApprovedContent) MediaURL() string {
	if c.ContentType == ContentTypeVideo && c.VideoURL != "" {
		return c.VideoURL
	}
	return c.ImageURL
}

const (
	ContentStatusGenerating = "generating"
	ContentStatusReady      = "ready"
)
