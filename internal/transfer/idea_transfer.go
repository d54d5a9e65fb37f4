package transfer

import "time"

type IdeaReview struct {
	IdeaID string `json:"ideaId"`
}

type IdeaAssignment struct {
	IdeaID      string `json:"ideaId"`
	CharacterID string `json:"characterId"`
}

// GenerationTrigger notifies the AI pipeline that an idea was approved.
type GenerationTrigger struct {
	Trigger   string    `json:"trigger"`
	IdeaID    string    `json:"idea_id"`
	Timestamp time.Time `json:"timestamp"`
}

const TriggerIdeaApproved = "idea_approved"

// TrendScanRequest asks the workflow engine to mine TikTok trends for a niche.
type TrendScanRequest struct {
	Niche      string `json:"niche"`
	Country    string `json:"country"`
	IndustryID string `json:"industry_id"`
}
