package models

import "time"

type ScheduledPost struct {
	ID               string     `db:"id" json:"id"`
	ContentID        string     `db:"content_id" json:"content_id"`
	CharacterID      string     `db:"character_id" json:"character_id"`
	PostType         string     `db:"post_type" json:"post_type"`
	ScheduledTime    time.Time  `db:"scheduled_time" json:"scheduled_time"`
	Caption          string     `db:"caption" json:"caption"`
	Hashtags         []string   `db:"hashtags" json:"hashtags"`
	MediaURL         string     `db:"media_url" json:"media_url"`
	MediaType        string     `db:"media_type" json:"media_type"`
	Status           string     `db:"status" json:"status"` // scheduled, posting, posted, failed
	InstagramPostURL *string    `db:"instagram_post_url" json:"instagram_post_url,omitempty"`
	ErrorMessage     *string    `db:"error_message" json:"error_message,omitempty"`
	PostedAt         *time.Time `db:"posted_at" json:"posted_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`

	// Populated on list queries only.
	Character *CharacterRef `db:"-" json:"character,omitempty"`
}

// CharacterRef is the minimal character projection joined onto listings.
type CharacterRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Niche string `json:"niche"`
}

const (
	PostStatusScheduled = "scheduled"
	PostStatusPosting   = "posting"
	PostStatusPosted    = "posted"
	PostStatusFailed    = "failed"
)

const (
	PostTypeFeed  = "feed"
	PostTypeStory = "story"
	PostTypeReel  = "reel"
)

// ActivePostStatuses are the statuses that claim a content item, keeping it
// out of the ready-to-post view. A failed post releases its content.
var ActivePostStatuses = []string{PostStatusScheduled, PostStatusPosting, PostStatusPosted}
