package models

import "time"

type ContentIdea struct {
	ID                  string     `db:"id" json:"id"`
	CharacterID         string     `db:"character_id" json:"character_id"`
	SourceID            string     `db:"source_id" json:"source_id"`
	SourcePostURL       string     `db:"source_post_url" json:"source_post_url"`
	IdeaText            string     `db:"idea_text" json:"idea_text"`
	InspirationSummary  string     `db:"inspiration_summary" json:"inspiration_summary"`
	OriginalPostCaption string     `db:"original_post_caption" json:"original_post_caption"`
	Status              string     `db:"status" json:"status"` // pending, approved, rejected
	ContentType         string     `db:"content_type" json:"content_type"`
	SourceType          string     `db:"source_type" json:"source_type"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	ApprovedAt          *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	RejectedAt          *time.Time `db:"rejected_at" json:"rejected_at,omitempty"`
}

const (
	IdeaStatusPending  = "pending"
	IdeaStatusApproved = "approved"
	IdeaStatusRejected = "rejected"
)

const (
	ContentTypePhoto = "photo"
	ContentTypeVideo = "video"
)

const (
	SourceTypeRSS         = "rss"
	SourceTypeTiktokTrend = "tiktok_trend"
	SourceTypeManual      = "manual"
)
