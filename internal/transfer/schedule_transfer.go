package transfer

import "time"

// SchedulePostCreation is the POST /schedule-post request body. Exactly one
// of ScheduledTime or PostNow is expected; caption and hashtags fall back to
// the content item's own values when omitted.
type SchedulePostCreation struct {
	ContentID     string   `json:"content_id"`
	CharacterID   string   `json:"character_id"`
	PostType      string   `json:"post_type"`
	ScheduledTime string   `json:"scheduled_time"`
	PostNow       bool     `json:"post_now"`
	Caption       string   `json:"caption"`
	Hashtags      []string `json:"hashtags"`
	MediaURL      string   `json:"media_url"`
	MediaType     string   `json:"media_type"`
}

// PosterNotification is the payload sent to the external poster webhook.
type PosterNotification struct {
	Trigger         string    `json:"trigger"`
	ScheduledPostID string    `json:"scheduled_post_id"`
	ContentID       string    `json:"content_id"`
	CharacterID     string    `json:"character_id"`
	PostType        string    `json:"post_type"`
	Caption         string    `json:"caption"`
	Hashtags        []string  `json:"hashtags"`
	MediaURL        string    `json:"media_url"`
	MediaType       string    `json:"media_type"`
	Timestamp       time.Time `json:"timestamp"`
}

const (
	TriggerPostNow      = "post_now"
	TriggerScheduledDue = "scheduled_due"
)
